package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-web-server/internal/security"
)

// Нет заголовка Authorization — 401
func TestAuthGuard_MissingToken(t *testing.T) {
	router := chi.NewRouter()
	router.With(security.AuthGuard(newTestJWTService())).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized access"}`, rec.Body.String())
}

// Токен есть, но невалидный — 403
func TestAuthGuard_InvalidToken(t *testing.T) {
	router := chi.NewRouter()
	router.With(security.AuthGuard(newTestJWTService())).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

// Refresh-токен не принимается вместо access даже будучи валидным
func TestAuthGuard_RefreshTokenRejected(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateAccessRefreshTokens(testUser())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.With(security.AuthGuard(svc)).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Валидный access-токен: identity попадает в контекст запроса
func TestAuthGuard_ValidToken(t *testing.T) {
	svc := newTestJWTService()
	user := testUser()
	pair, err := svc.GenerateAccessRefreshTokens(user)
	require.NoError(t, err)

	var gotClaims *security.Claims
	router := chi.NewRouter()
	router.With(security.AuthGuard(svc)).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = security.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, user.UUID, gotClaims.UserUUID)
	assert.Equal(t, user.Email, gotClaims.Email)
}
