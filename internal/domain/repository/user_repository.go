package repository

import (
	"context"
	"time"

	"github.com/tourism-portal/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TokenRepository хранит отозванные токены и токены сброса пароля
type TokenRepository interface {
	// Revoke помечает jti отозванным до истечения срока токена
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked проверяет, отозван ли jti
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// SaveResetToken сохраняет одноразовый токен сброса пароля
	SaveResetToken(ctx context.Context, token string, userID int64, ttl time.Duration) error

	// ConsumeResetToken возвращает userID и удаляет токен. (0, nil) если токена нет
	ConsumeResetToken(ctx context.Context, token string) (int64, error)
}
