package ports

import (
	"context"

	"scheduling-web-server/internal/model"
)

// UserRepository : справочник пользователей.
// Для подсистемы сессий это внешний коллаборатор: ей нужны только
// хэш пароля и атрибуты личности.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
}
