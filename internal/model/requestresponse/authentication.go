package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// RefreshRequest : запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// LogoutRequest : запрос на завершение сессии
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Email       string `json:"email" example:"a@x.com"`
	Password    string `json:"password" example:"P@ssw0rd123"`
	DisplayName string `json:"display_name" example:"Alice"`
}

// RegisterResponse : успешный ответ на регистрацию
type RegisterResponse struct {
	Message string `json:"message" example:"Registered successfully."`
	ID      string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
}

// CurrentUserResponse : личность авторизованного пользователя
type CurrentUserResponse struct {
	UserUUID    string `json:"user_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email       string `json:"email" example:"a@x.com"`
	DisplayName string `json:"display_name,omitempty" example:"Alice"`
	Picture     string `json:"picture,omitempty" example:"https://lh3.googleusercontent.com/a/default"`
}

// MessageResponse : ответы вида {"message": "..."} (и успех, и ошибки)
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}
