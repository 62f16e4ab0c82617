package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/usecase/dto"
)

// Claims - содержимое токена доступа
type Claims struct {
	UserID int64           `json:"uid"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin проверяет роль администратора
func (c *Claims) IsAdmin() bool {
	return c.Role == domain.UserRoleAdmin
}

// AuthUseCase - регистрация, вход, выход и сброс пароля
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	notifier  *NotificationUseCase
	logger    *zap.Logger
	secret    []byte
	tokenTTL  time.Duration
	resetTTL  time.Duration
	now       func() time.Time
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	notifier *NotificationUseCase,
	logger *zap.Logger,
	secret string,
	tokenTTL time.Duration,
	resetTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
		logger:    logger,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		resetTTL:  resetTTL,
		now:       time.Now,
	}
}

// Register создает пользователя, отправляет приветственное письмо и выдаёт токен
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID))
	if !uc.notifier.SendWelcome(ctx, user) {
		uc.logger.Warn("Welcome email not dispatched", zap.Int64("user_id", user.ID))
	}

	return uc.issueToken(user)
}

// Login проверяет пароль и выдаёт токен
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

// Logout отзывает токен до окончания его срока действия
func (uc *AuthUseCase) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return errors.ErrInvalidToken
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if remaining := claims.ExpiresAt.Sub(uc.now()); remaining > 0 {
			ttl = remaining
		}
	}

	if err := uc.tokenRepo.Revoke(ctx, claims.ID, ttl); err != nil {
		return errors.ErrCacheError.WithMessage("Failed to revoke token")
	}

	uc.logger.Info("User logged out", zap.Int64("user_id", claims.UserID))
	return nil
}

// ParseToken проверяет подпись, срок действия и отзыв токена
func (uc *AuthUseCase) ParseToken(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.secret, nil
	}, jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	revoked, err := uc.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		uc.logger.Error("Failed to check token revocation", zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if revoked {
		return nil, errors.ErrInvalidToken
	}

	return claims, nil
}

// RequestPasswordReset отправляет письмо со ссылкой сброса.
// Для неизвестного email ничего не делает, чтобы не раскрывать наличие учётной записи.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := uc.tokenRepo.SaveResetToken(ctx, token, user.ID, uc.resetTTL); err != nil {
		return errors.ErrCacheError.WithMessage("Failed to store reset token")
	}

	if !uc.notifier.SendPasswordReset(ctx, user, token, uc.resetTTL) {
		uc.logger.Warn("Password reset email not dispatched", zap.Int64("user_id", user.ID))
	}
	return nil
}

// ConfirmPasswordReset устанавливает новый пароль по одноразовому токену
func (uc *AuthUseCase) ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	userID, err := uc.tokenRepo.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return errors.ErrCacheError.WithMessage("Failed to read reset token")
	}
	if userID == 0 {
		return errors.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.ErrInvalidToken
		}
		return err
	}

	uc.logger.Info("Password reset", zap.Int64("user_id", userID))
	return nil
}

// EnsureAdmin создает администратора при первом запуске, если его ещё нет
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			uc.logger.Warn("Bootstrap admin email belongs to a regular user", zap.Int64("user_id", existing.ID))
		}
		return nil
	}
	if !errors.Is(err, errors.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.User{
		Email:        strings.ToLower(email),
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	uc.logger.Info("Admin user created", zap.Int64("user_id", admin.ID))
	return nil
}

func (uc *AuthUseCase) issueToken(user *domain.User) (*dto.TokenResponse, error) {
	now := uc.now()
	expiresAt := now.Add(uc.tokenTTL)

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
