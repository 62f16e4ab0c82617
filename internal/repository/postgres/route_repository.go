package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

const routeColumns = `id, name, slug, description, short_description, duration, difficulty,
	start_location, end_location, distance, highlights, cover_image, video_url, view_count,
	created_at, updated_at`

const stopColumns = `id, route_id, day_number, stop_order, name, description, latitude, longitude,
	duration, activities, tips, image`

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRouteRepository создает новый экземпляр route repository
func NewRouteRepository(db *DB, logger *zap.Logger) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *routeRepository) List(ctx context.Context) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY id`

	routes := make([]domain.Route, 0)
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		r.logger.Error("failed to list routes", zap.Error(err))
		return nil, fmt.Errorf("list routes: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) GetBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE slug = $1`

	var route domain.Route
	if err := r.db.GetContext(ctx, &route, query, slug); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrRouteNotFound
		}
		return nil, fmt.Errorf("get route %q: %w", slug, err)
	}

	return &route, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	var route domain.Route
	if err := r.db.GetContext(ctx, &route, query, id); err != nil {
		if isNoRows(err) {
			return nil, errors.ErrRouteNotFound
		}
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}

	return &route, nil
}

func (r *routeRepository) GetStops(ctx context.Context, routeID int64) ([]domain.Stop, error) {
	query := `SELECT ` + stopColumns + ` FROM route_stops WHERE route_id = $1 ORDER BY day_number, stop_order, id`

	stops := make([]domain.Stop, 0)
	if err := r.db.SelectContext(ctx, &stops, query, routeID); err != nil {
		r.logger.Error("failed to get route stops", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, fmt.Errorf("get stops for route %d: %w", routeID, err)
	}

	return stops, nil
}

func (r *routeRepository) IncrementViewCount(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE routes SET view_count = view_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("increment route views %d: %w", id, err)
	}
	return nil
}
