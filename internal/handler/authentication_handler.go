package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"scheduling-web-server/internal/autherr"
	"scheduling-web-server/internal/model/requestresponse"
	"scheduling-web-server/internal/ports"
	"scheduling-web-server/internal/security"
	"scheduling-web-server/internal/util"
)

type AuthenticationHandler struct {
	authenticationService ports.AuthenticationService
	identityProvider      ports.IdentityProvider
	frontendURL           string
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	identityProvider ports.IdentityProvider,
	frontendURL string,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService: authenticationService,
		identityProvider:      identityProvider,
		frontendURL:           frontendURL,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение пары access/refresh токенов по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} model.TokensPair "Пара токенов"
// @Failure 400 {object} requestresponse.MessageResponse "Пустые email или пароль"
// @Failure 401 {object} requestresponse.MessageResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.SendMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if req.Email == "" || req.Password == "" {
		util.SendMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	tokens, err := h.authenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, autherr.ErrInvalidCredentials):
			util.SendMessage(w, http.StatusUnauthorized, "Incorrect email or password")
		default:
			log.Println(err)
			util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	util.SendJSON(w, http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Description Гасит предъявленный refresh-токен и выпускает новую пару
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshRequest true "Тело запроса"
// @Success 200 {object} model.TokensPair "Новая пара токенов"
// @Failure 401 {object} requestresponse.MessageResponse "Не передан refresh-токен"
// @Failure 403 {object} requestresponse.MessageResponse "Токен невалиден или отозван"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		util.SendMessage(w, http.StatusUnauthorized, "Refresh token required")
		return
	}

	tokens, err := h.authenticationService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, autherr.ErrTokenRevoked):
			util.SendMessage(w, http.StatusForbidden, "Refresh token has been revoked")
		case errors.Is(err, autherr.ErrTokenMalformed),
			errors.Is(err, autherr.ErrSignatureInvalid),
			errors.Is(err, autherr.ErrTokenExpired):
			util.SendMessage(w, http.StatusForbidden, "Invalid or expired refresh token")
		default:
			log.Println(err)
			util.SendMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	util.SendJSON(w, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh-токен. Повторный logout того же токена — тоже успех.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LogoutRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse "Сессия завершена"
// @Failure 400 {object} requestresponse.MessageResponse "Не передан refresh-токен"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		util.SendMessage(w, http.StatusBadRequest, "Refresh token required")
		return
	}

	if err := h.authenticationService.Logout(ctx, req.RefreshToken); err != nil {
		log.Println(err)
		util.SendMessage(w, http.StatusInternalServerError, "Error logging out")
		return
	}

	util.SendMessage(w, http.StatusOK, "Logged out successfully")
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RegisterResponse "Пользователь создан"
// @Failure 400 {object} requestresponse.MessageResponse "Пустые email или пароль"
// @Failure 409 {object} requestresponse.MessageResponse "Пользователь уже существует"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (h *AuthenticationHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		util.SendMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authenticationService.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, autherr.ErrUserExists):
			util.SendMessage(w, http.StatusConflict, "User already exists")
		default:
			log.Println(err)
			util.SendMessage(w, http.StatusInternalServerError, "Error creating user")
		}
		return
	}

	util.SendJSON(w, http.StatusOK, requestresponse.RegisterResponse{
		Message: "Registered successfully.",
		ID:      user.UUID,
	})
}

// OAuthCallback godoc
// @Summary Callback identity-провайдера
// @Description Обменивает callback провайдера на проверенную личность и redirect с токенами.
// @Description Любая ошибка уводит на страницу логина с ошибкой, никогда — в авторизованное состояние.
// @Tags Authentication
// @Success 302 {string} string "Redirect на фронтенд"
// @Router /api/auth/oauth/callback [get]
func (h *AuthenticationHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := h.identityProvider.Exchange(ctx, r)
	if err != nil {
		log.Printf("[AuthHandler] ошибка OAuth callback: %v", err)
		http.Redirect(w, r, h.frontendURL+"/login?error=authentication-failed", http.StatusFound)
		return
	}

	tokens, err := h.authenticationService.LoginWithProvider(ctx, identity)
	if err != nil {
		log.Printf("[AuthHandler] ошибка входа через провайдера: %v", err)
		http.Redirect(w, r, h.frontendURL+"/login?error=authentication-failed", http.StatusFound)
		return
	}

	redirectURL, err := url.Parse(h.frontendURL + "/auth/callback")
	if err != nil {
		log.Printf("[AuthHandler] некорректный frontend URL: %v", err)
		http.Redirect(w, r, h.frontendURL+"/login?error=authentication-failed", http.StatusFound)
		return
	}

	query := redirectURL.Query()
	query.Set("accessToken", tokens.AccessToken)
	query.Set("refreshToken", tokens.RefreshToken)
	redirectURL.RawQuery = query.Encode()

	http.Redirect(w, r, redirectURL.String(), http.StatusFound)
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает identity payload авторизованного пользователя
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.SendMessage(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}

	util.SendJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{
		UserUUID:    claims.UserUUID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Picture:     claims.Picture,
	})
}
