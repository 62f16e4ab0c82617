package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	apperrors "github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/usecase"
)

const routesTTL = 10 * time.Minute

func sampleRoutes() []domain.Route {
	return []domain.Route{
		{ID: 1, Name: "Windhoek Day Trip", Slug: "windhoek-day", Duration: 1, Difficulty: domain.DifficultyEasy, StartLocation: "Windhoek"},
		{ID: 2, Name: "Coastal Weekend", Slug: "coastal-weekend", Duration: 2, Difficulty: domain.DifficultyModerate, StartLocation: "Swakopmund"},
		{ID: 3, Name: "Etosha Sunrise", Slug: "etosha-sunrise", Duration: 1, Difficulty: domain.DifficultyEasy, StartLocation: "Okaukuejo"},
	}
}

func TestRouteUseCase_List_FiltersCachedRoutes(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	cache := &MockCacheRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, cache, zap.NewNop(), routesTTL)

	cache.On("Get", ctx, "routes:all").Return(nil, nil).Once()
	routeRepo.On("List", ctx).Return(sampleRoutes(), nil).Once()
	cache.On("Set", ctx, "routes:all", mock.Anything, routesTTL).Return(nil).Once()

	result, err := uc.List(ctx, domain.RouteFilter{Duration: ptrInt(1)})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "windhoek-day", result[0].Slug)
	assert.Equal(t, "etosha-sunrise", result[1].Slug)

	// Второй запрос с другим фильтром обслуживается из кеша
	cached, err := json.Marshal(sampleRoutes())
	require.NoError(t, err)
	cache.On("Get", ctx, "routes:all").Return(cached, nil).Once()

	result, err = uc.List(ctx, domain.RouteFilter{StartLocation: "swakop"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "coastal-weekend", result[0].Slug)

	routeRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestRouteUseCase_Itinerary(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, &MockCacheRepository{}, zap.NewNop(), routesTTL)

	route := &domain.Route{ID: 5, Slug: "classic-namib-loop", Duration: 3}
	routeRepo.On("GetBySlug", ctx, "classic-namib-loop").Return(route, nil)
	routeRepo.On("GetStops", ctx, int64(5)).Return([]domain.Stop{
		{ID: 1, DayNumber: 2, StopOrder: 1, Name: "Sossusvlei"},
		{ID: 2, DayNumber: 1, StopOrder: 2, Name: "Rehoboth"},
		{ID: 3, DayNumber: 1, StopOrder: 1, Name: "Windhoek"},
		{ID: 4, DayNumber: 3, StopOrder: 1, Name: "Swakopmund"},
	}, nil)

	itinerary, err := uc.Itinerary(ctx, "classic-namib-loop")
	require.NoError(t, err)
	assert.Equal(t, "classic-namib-loop", itinerary.Route.Slug)
	require.Len(t, itinerary.Days, 3)
	assert.Equal(t, 1, itinerary.Days[0].Day)
	assert.Equal(t, "Windhoek", itinerary.Days[0].Stops[0].Name)
	assert.Equal(t, "Rehoboth", itinerary.Days[0].Stops[1].Name)
	assert.Equal(t, 3, itinerary.Days[2].Day)

	routeRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
}

func TestRouteUseCase_Itinerary_NoStops(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, &MockCacheRepository{}, zap.NewNop(), routesTTL)

	routeRepo.On("GetBySlug", ctx, "empty").Return(&domain.Route{ID: 8, Slug: "empty"}, nil)
	routeRepo.On("GetStops", ctx, int64(8)).Return([]domain.Stop{}, nil)

	itinerary, err := uc.Itinerary(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, itinerary.Days)
	assert.Empty(t, itinerary.Days)
}

func TestRouteUseCase_Map_SelectedDay(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, &MockCacheRepository{}, zap.NewNop(), routesTTL)

	routeRepo.On("GetBySlug", ctx, "loop").Return(&domain.Route{ID: 2, Slug: "loop"}, nil)
	routeRepo.On("GetStops", ctx, int64(2)).Return([]domain.Stop{
		{ID: 1, DayNumber: 1, StopOrder: 1, Latitude: "-22.5609", Longitude: "17.0658"},
		{ID: 2, DayNumber: 2, StopOrder: 1, Latitude: "-22.6784", Longitude: "14.5266"},
		{ID: 3, DayNumber: 2, StopOrder: 2, Latitude: "", Longitude: ""},
	}, nil)

	m, err := uc.Map(ctx, "loop", 2)
	require.NoError(t, err)
	require.Len(t, m.Waypoints, 2)
	assert.Equal(t, domain.MarkerColorDefault, m.Waypoints[0].Color)
	assert.Equal(t, domain.MarkerColorHighlight, m.Waypoints[1].Color)
	assert.Equal(t, 2, m.SelectedDay)
	require.NotNil(t, m.Bounds)
}

func TestRouteUseCase_GetStops_UnknownRoute(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, &MockCacheRepository{}, zap.NewNop(), routesTTL)

	routeRepo.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrRouteNotFound)

	_, err := uc.GetStops(ctx, 404)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "/routes", appErr.Details["recovery_path"])
	routeRepo.AssertNotCalled(t, "GetStops", mock.Anything, mock.Anything)
}

func TestRouteUseCase_GetBySlug_IncrementsViews(t *testing.T) {
	ctx := context.Background()
	routeRepo := &MockRouteRepository{}
	uc := usecase.NewRouteUseCase(routeRepo, &MockCacheRepository{}, zap.NewNop(), routesTTL)

	routeRepo.On("GetBySlug", ctx, "loop").Return(&domain.Route{ID: 2, ViewCount: 4}, nil)
	routeRepo.On("IncrementViewCount", ctx, int64(2)).Return(nil)

	route, err := uc.GetBySlug(ctx, "loop")
	require.NoError(t, err)
	assert.Equal(t, 5, route.ViewCount)
}
