package security

import (
	"context"
	"fmt"
	"net/http"

	"scheduling-web-server/internal/model"
)

// GatewayIdentityProvider реализует ports.IdentityProvider поверх
// аутентифицирующего reverse proxy (oauth2-proxy и совместимые).
// Само OAuth-рукопожатие выполняет proxy; сюда запрос приходит уже
// с заголовками проверенной личности. Заголовки доверенные: callback-путь
// должен быть достижим только через proxy.
type GatewayIdentityProvider struct{}

func NewGatewayIdentityProvider() *GatewayIdentityProvider {
	return &GatewayIdentityProvider{}
}

func (p *GatewayIdentityProvider) Exchange(_ context.Context, r *http.Request) (*model.ProviderIdentity, error) {
	email := r.Header.Get("X-Auth-Request-Email")
	if email == "" {
		return nil, fmt.Errorf("провайдер не передал email пользователя")
	}

	return &model.ProviderIdentity{
		Email:       email,
		GoogleID:    r.Header.Get("X-Auth-Request-User"),
		DisplayName: r.Header.Get("X-Auth-Request-Preferred-Username"),
		Picture:     r.Header.Get("X-Auth-Request-Picture"),
	}, nil
}
