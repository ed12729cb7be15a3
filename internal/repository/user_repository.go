package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/autherr"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/util"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, password_hash, google_id, display_name, picture)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING uuid, email, password_hash, google_id, display_name, picture, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Email,
		user.PasswordHash,
		user.GoogleID,
		user.DisplayName,
		user.Picture,
	).StructScan(createdUser)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, google_id, display_name, picture, created_at
				FROM users WHERE email = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[UserRepo] %w", autherr.ErrUserNotFound)
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, google_id, display_name, picture, created_at
				FROM users WHERE uuid = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[UserRepo] %w", autherr.ErrUserNotFound)
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}
