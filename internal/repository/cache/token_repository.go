package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain/repository"
)

const (
	keyPrefixRevoked = "auth:revoked:"
	keyPrefixReset   = "auth:reset:"
)

type tokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTokenRepository хранит отзыв JWT и токены сброса пароля в Redis
func NewTokenRepository(redis *Redis) repository.TokenRepository {
	return &tokenRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *tokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Токен уже истёк, хранить нечего
		return nil
	}
	if err := r.client.Set(ctx, keyPrefixRevoked+jti, "1", ttl).Err(); err != nil {
		r.logger.Error("Failed to revoke token", zap.String("jti", jti), zap.Error(err))
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefixRevoked+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

func (r *tokenRepository) SaveResetToken(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefixReset+token, userID, ttl).Err(); err != nil {
		r.logger.Error("Failed to save reset token", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken атомарно читает и удаляет токен (GETDEL)
func (r *tokenRepository) ConsumeResetToken(ctx context.Context, token string) (int64, error) {
	userID, err := r.client.GetDel(ctx, keyPrefixReset+token).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}
