package ports

import (
	"context"
	"time"

	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/security"
)

// RevokedTokenRepositoryInterface : хранилище отозванных refresh-токенов
type RevokedTokenRepositoryInterface interface {
	// RecordRevoked возвращает true, если запись вставил именно этот вызов.
	// Повторная вставка того же токена — не ошибка (false, nil).
	RecordRevoked(ctx context.Context, token string) (bool, error)
	IsRevoked(ctx context.Context, token string) (bool, error)
	PruneOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type JWTServiceInterface interface {
	GenerateAccessRefreshTokens(user *model.User) (*model.TokensPair, error)
	ValidateToken(tokenStr string, kind security.TokenKind) (*security.Claims, error)
}
