package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	AccessSecretKey  string `yaml:"access_secret_key"`
	RefreshSecretKey string `yaml:"refresh_secret_key"`
	AccessTokenTTL   string `yaml:"access_token_ttl"`
	RefreshTokenTTL  string `yaml:"refresh_token_ttl"`
	Issuer           string `yaml:"issuer"`
}

type OAuthConfig struct {
	// FrontendURL : база для redirect после OAuth callback
	FrontendURL string `yaml:"frontend_url"`
}

type TTL struct {
	// Cache : время жизни кэша шаблонов расписаний в секундах
	Cache int `yaml:"cache"`
}
