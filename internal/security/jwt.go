package security

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/autherr"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// TokenKind : вид токена. Payload у access и refresh токенов одинаковый,
// поэтому вид токена определяется ТОЛЬКО тем, каким секретом он проверяется.
// Перепутать refresh с access нельзя: подпись чужим секретом не сойдётся.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims : identity payload, зашитый в оба токена.
// Неизменяем после выпуска, из токена не "доуточняется".
type Claims struct {
	UserUUID    string `json:"user_uuid"`
	Email       string `json:"email"`
	GoogleID    string `json:"google_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Picture     string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateAccessRefreshTokens выпускает пару токенов для пользователя.
// Две независимые подписи: свой секрет и свой срок жизни у каждого токена,
// чтобы утечка access-токена была ограничена коротким окном,
// а refresh-токен оставался отзываемым через хранилище.
func (service *JWTService) GenerateAccessRefreshTokens(user *model.User) (*model.TokensPair, error) {
	accessToken, err := service.signToken(user, service.AccessSecretKey, service.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка выпуска access токена", err)
	}

	refreshToken, err := service.signToken(user, service.RefreshSecretKey, service.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка выпуска refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) signToken(user *model.User, secretKey string, ttl string) (string, error) {
	timeDuration, err := time.ParseDuration(ttl)
	if err != nil {
		return "", fmt.Errorf("ошибка парсинга TTL: %w", err)
	}

	claims := Claims{
		UserUUID:    user.UUID,
		Email:       user.Email,
		GoogleID:    user.GoogleID,
		DisplayName: user.DisplayName,
		Picture:     user.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.Issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return jwtToken.SignedString([]byte(secretKey))
}

// ValidateToken проверяет подпись и срок жизни токена заданного вида.
// Возвращает одну из сентинельных ошибок autherr; деталей подписи
// наружу не отдаёт.
func (service *JWTService) ValidateToken(jwtTokenStr string, kind TokenKind) (*Claims, error) {
	var claims = &Claims{}

	secretKey := service.AccessSecretKey
	if kind == TokenKindRefresh {
		secretKey = service.RefreshSecretKey
	}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("невалидный токен: %w", autherr.ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("невалидный токен: %w", autherr.ErrSignatureInvalid)
		default:
			return nil, fmt.Errorf("невалидный токен: %w", autherr.ErrTokenMalformed)
		}
	}

	if !jwtToken.Valid {
		return nil, fmt.Errorf("невалидный токен: %w", autherr.ErrSignatureInvalid)
	}

	return claims, nil
}

// AuthGuard пропускает запрос дальше только с валидным access-токеном.
// Хранилище отозванных токенов здесь сознательно не опрашивается:
// access-токен stateless и живёт до своего expiry даже после logout.
func AuthGuard(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(jwtService, next))
	}
}

func handleAuthentication(jwtService *JWTService, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			util.SendMessage(writer, http.StatusUnauthorized, "Unauthorized access")
			return
		}

		token := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(token, TokenKindAccess)
		if err != nil {
			util.SendMessage(writer, http.StatusForbidden, "Invalid token")
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
