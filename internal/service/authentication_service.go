package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/autherr"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/ports"
	"scheduling-web-server/internal/security"
	"scheduling-web-server/internal/util"
)

// AuthenticationService управляет жизненным циклом сессионных токенов:
// выпуск при входе, ротация при refresh, отзыв при logout.
// Refresh-токен одноразовый: успешный refresh всегда гасит предъявленный
// токен и выпускает новый (Active -> Spent, без самопетли).
type AuthenticationService struct {
	revokedTokenRepository ports.RevokedTokenRepositoryInterface
	jwtService             ports.JWTServiceInterface
	userRepository         ports.UserRepository
	jwtConfig              *config.JWTConfig
}

func NewAuthenticationService(
	revokedTokenRepository ports.RevokedTokenRepositoryInterface,
	jwtService ports.JWTServiceInterface,
	userRepository ports.UserRepository,
	jwtConfig *config.JWTConfig,
) *AuthenticationService {
	return &AuthenticationService{
		revokedTokenRepository: revokedTokenRepository,
		jwtService:             jwtService,
		userRepository:         userRepository,
		jwtConfig:              jwtConfig,
	}
}

// Login выполняет вход по email и паролю.
// "Нет такого пользователя" и "неверный пароль" намеренно неразличимы:
// оба случая — autherr.ErrInvalidCredentials.
// Свежевыпущенный refresh-токен в хранилище отозванных НЕ записывается:
// туда токен попадает только когда он потрачен (refresh) или отозван (logout).
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, autherr.ErrUserNotFound) {
			return nil, autherr.ErrInvalidCredentials
		}
		util.LogError("[AuthService] ошибка поиска пользователя", err)
		return nil, autherr.ErrStoreUnavailable
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, autherr.ErrInvalidCredentials
	}

	tokens, err := s.jwtService.GenerateAccessRefreshTokens(user)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	// чистка устаревших записей не должна задерживать запрос
	go s.pruneExpired()

	return tokens, nil
}

// LoginWithProvider выполняет вход по личности, уже проверенной внешним
// identity-провайдером. Пароль не проверяется. При первом входе
// пользователь заводится в справочнике.
func (s *AuthenticationService) LoginWithProvider(ctx context.Context, identity *model.ProviderIdentity) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, autherr.ErrUserNotFound) {
			util.LogError("[AuthService] ошибка поиска пользователя", err)
			return nil, autherr.ErrStoreUnavailable
		}

		user, err = s.userRepository.CreateUser(ctx, &model.User{
			UUID:        uuid.New().String(),
			Email:       identity.Email,
			GoogleID:    identity.GoogleID,
			DisplayName: identity.DisplayName,
			Picture:     identity.Picture,
		})
		if err != nil {
			return nil, util.LogError("[AuthService] ошибка создания пользователя", err)
		}
	}

	tokens, err := s.jwtService.GenerateAccessRefreshTokens(user)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	return tokens, nil
}

// Refresh гасит предъявленный refresh-токен и выпускает новую пару.
// Два конкурентных refresh с одним и тем же токеном не могут оба выпустить
// валидные пары: запись отзыва идёт через вставку с уникальным ключом,
// и пару выпускает только тот вызов, который реально вставил запись.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken, security.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revokedTokenRepository.IsRevoked(ctx, refreshToken)
	if err != nil {
		util.LogError("[AuthService] ошибка проверки отзыва токена", err)
		return nil, autherr.ErrStoreUnavailable
	}
	if revoked {
		log.Printf("[AuthService] попытка refresh отозванным токеном")
		return nil, autherr.ErrTokenRevoked
	}

	inserted, err := s.revokedTokenRepository.RecordRevoked(ctx, refreshToken)
	if err != nil {
		// не записали отзыв — пару выпускать нельзя, иначе возможен replay
		util.LogError("[AuthService] не удалось записать отзыв токена", err)
		return nil, autherr.ErrStoreUnavailable
	}
	if !inserted {
		// конкурентный refresh успел первым
		log.Printf("[AuthService] проигрыш гонки за refresh-токен")
		return nil, autherr.ErrTokenRevoked
	}

	user := &model.User{
		UUID:        claims.UserUUID,
		Email:       claims.Email,
		GoogleID:    claims.GoogleID,
		DisplayName: claims.DisplayName,
		Picture:     claims.Picture,
	}

	tokens, err := s.jwtService.GenerateAccessRefreshTokens(user)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	return tokens, nil
}

// Logout безусловно гасит refresh-токен.
// Logout уже погашенного или неизвестного токена — тоже успех (идемпотентно).
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.revokedTokenRepository.RecordRevoked(ctx, refreshToken); err != nil {
		util.LogError("[AuthService] не удалось записать отзыв токена", err)
		return autherr.ErrStoreUnavailable
	}
	return nil
}

// Register заводит нового пользователя по email и паролю
func (s *AuthenticationService) Register(ctx context.Context, email, password, displayName string) (*model.User, error) {
	if _, err := s.userRepository.FindByEmail(ctx, email); err == nil {
		return nil, autherr.ErrUserExists
	} else if !errors.Is(err, autherr.ErrUserNotFound) {
		util.LogError("[AuthService] ошибка поиска пользователя", err)
		return nil, autherr.ErrStoreUnavailable
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, util.LogError("[AuthService] не удалось создать хэш пароля", err)
	}

	created, err := s.userRepository.CreateUser(ctx, &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	})
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка создания пользователя", err)
	}

	return created, nil
}

// pruneExpired удаляет записи отзыва старше срока жизни refresh-токена:
// просроченный токен и так не пройдёт проверку подписи, хранить его незачем.
// Ошибки только логируются, путь запроса от чистки не зависит.
func (s *AuthenticationService) pruneExpired() {
	window, err := time.ParseDuration(s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		window = 7 * 24 * time.Hour
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.revokedTokenRepository.PruneOlderThan(ctx, window)
	if err != nil {
		log.Printf("[AuthService] ошибка чистки отозванных токенов: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[AuthService] удалено %d устаревших записей отзыва", count)
	}
}
