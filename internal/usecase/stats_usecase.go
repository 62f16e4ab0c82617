package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
)

// regionUnknown - ключ для объектов, регион которых справочник не определил
const regionUnknown = "unknown"

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	registry  *domain.RegionRegistry
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	registry *domain.RegionRegistry,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		registry:  registry,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	return uc.RefreshStatistics(ctx)
}

// RefreshStatistics пересчитывает статистику и обновляет кеш
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	listings, err := uc.statsRepo.ListingLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get listing locations: %w", err)
	}
	stats.ListingsByRegion = uc.countByRegion(listings)
	stats.LastUpdated = time.Now().UTC()

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		// Не возвращаем ошибку, т.к. данные уже получены
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}

func (uc *StatsUseCase) countByRegion(listings []domain.Listing) map[string]int {
	counts := make(map[string]int)
	for _, l := range listings {
		source := l.Region
		if source == "" {
			source = l.Location
		}

		regionID := regionUnknown
		if region, ok := uc.registry.RegionByID(source); ok {
			regionID = region.ID
		} else if id, ok := uc.registry.RegionFromLocation(source); ok {
			regionID = id
		}
		counts[regionID]++
	}
	return counts
}
