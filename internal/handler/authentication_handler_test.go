package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scheduling-web-server/internal/autherr"
	"scheduling-web-server/internal/handler"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/security"
)

const frontendURL = "http://frontend.local"

// MockAuthenticationService
type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	args := m.Called(ctx, email, password)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) LoginWithProvider(ctx context.Context, identity *model.ProviderIdentity) (*model.TokensPair, error) {
	args := m.Called(ctx, identity)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockAuthenticationService) Register(ctx context.Context, email, password, displayName string) (*model.User, error) {
	args := m.Called(ctx, email, password, displayName)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestAuthenticationHandler() (*handler.AuthenticationHandler, *MockAuthenticationService) {
	mockService := new(MockAuthenticationService)
	return handler.NewAuthenticationHandler(
		mockService,
		security.NewGatewayIdentityProvider(),
		frontendURL,
	), mockService
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	h(recorder, request)
	return recorder
}

// 1. Успешный вход возвращает пару токенов
func TestLogin_Success(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Login", mock.Anything, "a@x.com", "password123").
		Return(&model.TokensPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	recorder := doJSON(t, authHandler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"accessToken":"access","refreshToken":"refresh"}`, recorder.Body.String())
}

// 2. Неверный пароль: 401 и ровно то же сообщение, что и для неизвестного email
func TestLogin_InvalidCredentials(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Login", mock.Anything, "a@x.com", "wrong").
		Return(nil, autherr.ErrInvalidCredentials)

	recorder := doJSON(t, authHandler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Incorrect email or password"}`, recorder.Body.String())
}

// 3. Пустые поля отклоняются до обращения к сервису
func TestLogin_MissingFields(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	recorder := doJSON(t, authHandler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Email and password are required"}`, recorder.Body.String())
	mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

// 4. Ошибка хранилища не раскрывается клиенту
func TestLogin_StoreError(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Login", mock.Anything, "a@x.com", "password123").
		Return(nil, autherr.ErrStoreUnavailable)

	recorder := doJSON(t, authHandler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, recorder.Body.String())
}

// 5. Успешное обновление выдаёт новую пару
func TestRefresh_Success(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Refresh", mock.Anything, "old-refresh").
		Return(&model.TokensPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	recorder := doJSON(t, authHandler.Refresh, http.MethodPost, "/api/auth/refresh",
		`{"refreshToken":"old-refresh"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"accessToken":"new-access","refreshToken":"new-refresh"}`, recorder.Body.String())
}

// 6. Без токена — 401
func TestRefresh_MissingToken(t *testing.T) {
	authHandler, _ := newTestAuthenticationHandler()

	recorder := doJSON(t, authHandler.Refresh, http.MethodPost, "/api/auth/refresh", `{}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Refresh token required"}`, recorder.Body.String())
}

// 7. Отозванный токен — 403 с сообщением про отзыв
func TestRefresh_Revoked(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Refresh", mock.Anything, "revoked").
		Return(nil, autherr.ErrTokenRevoked)

	recorder := doJSON(t, authHandler.Refresh, http.MethodPost, "/api/auth/refresh",
		`{"refreshToken":"revoked"}`)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"message":"Refresh token has been revoked"}`, recorder.Body.String())
}

// 8. Просроченный и сломанный токены дают одинаковый 403
func TestRefresh_InvalidOrExpired(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Refresh", mock.Anything, "expired").Return(nil, autherr.ErrTokenExpired)
	mockService.On("Refresh", mock.Anything, "garbage").Return(nil, autherr.ErrTokenMalformed)

	for _, token := range []string{"expired", "garbage"} {
		recorder := doJSON(t, authHandler.Refresh, http.MethodPost, "/api/auth/refresh",
			`{"refreshToken":"`+token+`"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.JSONEq(t, `{"message":"Invalid or expired refresh token"}`, recorder.Body.String())
	}
}

// 9. Logout успешен, повторный logout того же токена — тоже успех
func TestLogout_Idempotent(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Logout", mock.Anything, "refresh").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		recorder := doJSON(t, authHandler.Logout, http.MethodPost, "/api/auth/logout",
			`{"refreshToken":"refresh"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Logged out successfully"}`, recorder.Body.String())
	}
	mockService.AssertExpectations(t)
}

// 10. Ошибка хранилища при logout — 500
func TestLogout_StoreError(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Logout", mock.Anything, "refresh").Return(autherr.ErrStoreUnavailable)

	recorder := doJSON(t, authHandler.Logout, http.MethodPost, "/api/auth/logout",
		`{"refreshToken":"refresh"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"message":"Error logging out"}`, recorder.Body.String())
}

// 11. Регистрация существующего email — 409
func TestRegister_UserExists(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Register", mock.Anything, "a@x.com", "password123", "Alice").
		Return(nil, autherr.ErrUserExists)

	recorder := doJSON(t, authHandler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"password123","display_name":"Alice"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, recorder.Body.String())
}

// 12. Успешная регистрация возвращает id нового пользователя
func TestRegister_Success(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("Register", mock.Anything, "a@x.com", "password123", "Alice").
		Return(&model.User{UUID: "uuid-1", Email: "a@x.com"}, nil)

	recorder := doJSON(t, authHandler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"password123","display_name":"Alice"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Registered successfully.","id":"uuid-1"}`, recorder.Body.String())
}

// 13. OAuth callback: redirect на фронтенд с токенами в query
func TestOAuthCallback_Success(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("LoginWithProvider", mock.Anything, mock.MatchedBy(func(identity *model.ProviderIdentity) bool {
		return identity.Email == "a@x.com" && identity.GoogleID == "google-1"
	})).Return(&model.TokensPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/callback", nil)
	request.Header.Set("X-Auth-Request-Email", "a@x.com")
	request.Header.Set("X-Auth-Request-User", "google-1")
	recorder := httptest.NewRecorder()

	authHandler.OAuthCallback(recorder, request)

	assert.Equal(t, http.StatusFound, recorder.Code)

	location, err := url.Parse(recorder.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, frontendURL+"/auth/callback", location.Scheme+"://"+location.Host+location.Path)
	assert.Equal(t, "access", location.Query().Get("accessToken"))
	assert.Equal(t, "refresh", location.Query().Get("refreshToken"))
}

// 14. Callback без личности уводит на страницу логина, а не в авторизованное состояние
func TestOAuthCallback_NoIdentity(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	request := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/callback", nil)
	recorder := httptest.NewRecorder()

	authHandler.OAuthCallback(recorder, request)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, frontendURL+"/login?error=authentication-failed", recorder.Header().Get("Location"))
	mockService.AssertNotCalled(t, "LoginWithProvider", mock.Anything, mock.Anything)
}

// 15. Ошибка сервиса при входе через провайдера тоже даёт redirect на логин
func TestOAuthCallback_ServiceError(t *testing.T) {
	authHandler, mockService := newTestAuthenticationHandler()

	mockService.On("LoginWithProvider", mock.Anything, mock.Anything).
		Return(nil, autherr.ErrStoreUnavailable)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/callback", nil)
	request.Header.Set("X-Auth-Request-Email", "a@x.com")
	recorder := httptest.NewRecorder()

	authHandler.OAuthCallback(recorder, request)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, frontendURL+"/login?error=authentication-failed", recorder.Header().Get("Location"))
}
