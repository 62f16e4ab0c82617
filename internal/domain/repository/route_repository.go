package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// RouteRepository определяет методы для чтения маршрутов и остановок
type RouteRepository interface {
	// List возвращает все маршруты в порядке id
	List(ctx context.Context) ([]domain.Route, error)

	// GetBySlug возвращает маршрут по slug
	GetBySlug(ctx context.Context, slug string) (*domain.Route, error)

	// GetByID возвращает маршрут по ID
	GetByID(ctx context.Context, id int64) (*domain.Route, error)

	// GetStops возвращает остановки маршрута в порядке (day_number, stop_order)
	GetStops(ctx context.Context, routeID int64) ([]domain.Stop, error)

	// IncrementViewCount увеличивает счётчик просмотров
	IncrementViewCount(ctx context.Context, id int64) error
}
