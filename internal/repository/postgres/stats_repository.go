package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику по контенту
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		MediaByType:      make(map[string]int),
		ListingsByRegion: make(map[string]int),
		LastUpdated:      time.Now(),
	}

	if err := r.db.QueryRowxContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&stats.Categories); err != nil {
		r.logger.Error("failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("count categories: %w", err)
	}

	listingStats, err := r.getListingStats(ctx)
	if err != nil {
		r.logger.Error("failed to get listing stats", zap.Error(err))
		return nil, fmt.Errorf("get listing stats: %w", err)
	}
	stats.Listings = *listingStats

	routeStats, err := r.getRouteStats(ctx)
	if err != nil {
		r.logger.Error("failed to get route stats", zap.Error(err))
		return nil, fmt.Errorf("get route stats: %w", err)
	}
	stats.Routes = *routeStats

	if err := r.fillMediaByType(ctx, stats.MediaByType); err != nil {
		r.logger.Error("failed to get media stats", zap.Error(err))
		return nil, fmt.Errorf("get media stats: %w", err)
	}

	return stats, nil
}

// ListingLocations возвращает регион и место активных объектов
func (r *statsRepository) ListingLocations(ctx context.Context) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0)
	err := r.db.SelectContext(ctx, &listings, `SELECT id, region, location FROM listings WHERE is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return listings, nil
}

func (r *statsRepository) getListingStats(ctx context.Context) (*domain.ListingStats, error) {
	stats := &domain.ListingStats{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE is_active AND is_featured),
			COALESCE(SUM(view_count), 0)
		FROM listings
	`

	err := r.db.QueryRowxContext(ctx, query).Scan(&stats.Total, &stats.Active, &stats.Featured, &stats.Views)
	if err != nil {
		return nil, fmt.Errorf("query listing stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) getRouteStats(ctx context.Context) (*domain.RouteStats, error) {
	stats := &domain.RouteStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(*) FROM route_stops),
			(SELECT COALESCE(SUM(view_count), 0) FROM routes)
	`

	if err := r.db.QueryRowxContext(ctx, query).Scan(&stats.Total, &stats.Stops, &stats.Views); err != nil {
		return nil, fmt.Errorf("query route stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) fillMediaByType(ctx context.Context, byType map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `SELECT media_type, COUNT(*) FROM media GROUP BY media_type`)
	if err != nil {
		return fmt.Errorf("query media stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mediaType string
		var count int
		if err := rows.Scan(&mediaType, &count); err != nil {
			return fmt.Errorf("scan media stats: %w", err)
		}
		byType[mediaType] = count
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("media stats rows error: %w", err)
	}

	return nil
}
