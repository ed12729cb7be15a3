package model

import "time"

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT, живёт 1 час)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (JWT, живёт 7 дней, одноразовый)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}

// RevokedToken : запись об отозванном refresh-токене.
// Токен хранится дословно: попал в таблицу — больше не принимается.
type RevokedToken struct {
	Token     string    `db:"token"`
	RevokedAt time.Time `db:"revoked_at"`
}
