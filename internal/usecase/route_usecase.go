package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

// RouteUseCase - маршруты, программа по дням и карта
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// List возвращает маршруты, подходящие под фильтр.
// Кешируется полный список, фильтрация выполняется в памяти.
func (uc *RouteUseCase) List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	var routes []domain.Route
	if !readCached(ctx, uc.cacheRepo, cacheKeyRoutesAll, &routes, uc.logger) {
		var err error
		routes, err = uc.routeRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		writeCached(ctx, uc.cacheRepo, cacheKeyRoutesAll, routes, uc.cacheTTL, uc.logger)
	}

	return domain.FilterRoutes(routes, filter), nil
}

// GetBySlug возвращает маршрут и засчитывает просмотр
func (uc *RouteUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	route, err := uc.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := uc.routeRepo.IncrementViewCount(ctx, route.ID); err != nil {
		uc.logger.Warn("Failed to increment route views", zap.Int64("route_id", route.ID), zap.Error(err))
	} else {
		route.ViewCount++
	}

	return route, nil
}

// GetStops возвращает остановки маршрута в порядке (день, порядок)
func (uc *RouteUseCase) GetStops(ctx context.Context, routeID int64) ([]domain.Stop, error) {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, notFoundRoute(err)
	}

	stops, err := uc.routeRepo.GetStops(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route stops: %w", err)
	}
	return stops, nil
}

// Itinerary возвращает маршрут с остановками, сгруппированными по дням.
// Маршрут без остановок - пустая, но валидная программа.
func (uc *RouteUseCase) Itinerary(ctx context.Context, slug string) (*domain.Itinerary, error) {
	route, err := uc.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	stops, err := uc.routeRepo.GetStops(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("get route stops: %w", err)
	}

	return &domain.Itinerary{
		Route: *route,
		Days:  domain.GroupStopsByDay(stops),
	}, nil
}

// Map строит карту маршрута с выделенным днём. day=0 - без выделения.
func (uc *RouteUseCase) Map(ctx context.Context, slug string, day int) (*domain.RouteMap, error) {
	route, err := uc.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	stops, err := uc.routeRepo.GetStops(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("get route stops: %w", err)
	}

	m := domain.BuildRouteMap(stops, day)
	return &m, nil
}

func (uc *RouteUseCase) findBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	route, err := uc.routeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundRoute(err)
	}
	return route, nil
}

func notFoundRoute(err error) error {
	if errors.Is(err, errors.ErrRouteNotFound) {
		return errors.RecoveryPath(errors.ErrRouteNotFound, "/routes")
	}
	return err
}
