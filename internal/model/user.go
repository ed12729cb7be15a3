package model

import "time"

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	GoogleID     string    `db:"google_id" json:"google_id,omitempty"`
	DisplayName  string    `db:"display_name" json:"display_name,omitempty"`
	Picture      string    `db:"picture" json:"picture,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ProviderIdentity : проверенная личность пользователя от внешнего
// identity-провайдера. Подсистема доверяет ей без повторной проверки.
type ProviderIdentity struct {
	Email       string `json:"email"`
	GoogleID    string `json:"google_id"`
	DisplayName string `json:"display_name"`
	Picture     string `json:"picture"`
}
