package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по контенту.
	// ListingsByRegion заполняется выше, через справочник регионов.
	GetStatistics(ctx context.Context) (*domain.Statistics, error)

	// ListingLocations возвращает пары (region, location) активных объектов
	ListingLocations(ctx context.Context) ([]domain.Listing, error)
}
