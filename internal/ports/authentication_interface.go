package ports

import (
	"context"
	"net/http"

	"scheduling-web-server/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.TokensPair, error)
	LoginWithProvider(ctx context.Context, identity *model.ProviderIdentity) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Register(ctx context.Context, email, password, displayName string) (*model.User, error)
}

// IdentityProvider : чёрный ящик OAuth-рукопожатия.
// Превращает callback-запрос провайдера в проверенную личность пользователя.
// Сама подсистема сессий эту личность больше не перепроверяет.
type IdentityProvider interface {
	Exchange(ctx context.Context, r *http.Request) (*model.ProviderIdentity, error)
}
