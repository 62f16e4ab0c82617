package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain/repository"
)

// Префиксы ключей кеша. Инвалидация после изменений в админке идёт по префиксу.
const (
	cachePrefixCategories = "categories:"
	cachePrefixListings   = "listings:"
	cachePrefixRoutes     = "routes:"

	cacheKeyCategoriesActive = cachePrefixCategories + "active"
	cacheKeyRoutesAll        = cachePrefixRoutes + "all"

	statsCacheKey = "stats:current"
)

// readCached достаёт JSON-значение из кеша. Ошибки кеша не фатальны: вызывающий идёт в БД.
func readCached(ctx context.Context, cache repository.CacheRepository, key string, dst interface{}, logger *zap.Logger) bool {
	data, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to read cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("Corrupted cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func writeCached(ctx context.Context, cache repository.CacheRepository, key string, value interface{}, ttl time.Duration, logger *zap.Logger) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to write cache", zap.String("key", key), zap.Error(err))
	}
}
