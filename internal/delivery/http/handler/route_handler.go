package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
)

// RouteHandler - маршруты, программа по дням и карта
type RouteHandler struct {
	routeUC RouteService
	logger  *zap.Logger
}

// NewRouteHandler создает новый RouteHandler
func NewRouteHandler(routeUC RouteService, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List routes
// @Description Маршруты с фильтрами по длительности, сложности и точке старта (подстрока)
// @Tags Routes
// @Produce json
// @Param duration query int false "Exact duration in days"
// @Param difficulty query string false "easy | moderate | challenging"
// @Param startLocation query string false "Start location substring"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	filter, err := parseRouteFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	routes, err := h.routeUC.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list routes", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{Total: len(routes)})
}

// GetBySlug godoc
// @Summary Get route
// @Tags Routes
// @Produce json
// @Param slug path string true "Route slug"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{slug} [get]
func (h *RouteHandler) GetBySlug(c *fiber.Ctx) error {
	route, err := h.routeUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, nil)
}

// GetStops godoc
// @Summary Get route stops
// @Description Остановки в порядке (день, порядок)
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/stops [get]
func (h *RouteHandler) GetStops(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stops, err := h.routeUC.GetStops(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stops, &utils.Meta{Total: len(stops)})
}

// Itinerary godoc
// @Summary Get route itinerary
// @Description Остановки, сгруппированные по дням
// @Tags Routes
// @Produce json
// @Param slug path string true "Route slug"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{slug}/itinerary [get]
func (h *RouteHandler) Itinerary(c *fiber.Ctx) error {
	itinerary, err := h.routeUC.Itinerary(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, itinerary, &utils.Meta{Total: len(itinerary.Days)})
}

// Map godoc
// @Summary Get route map
// @Description Маркеры, линии и границы карты. day выделяет маркеры выбранного дня.
// @Tags Routes
// @Produce json
// @Param slug path string true "Route slug"
// @Param day query int false "Selected day"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteMap}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{slug}/map [get]
func (h *RouteHandler) Map(c *fiber.Ctx) error {
	day := 0
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.SendError(c, fieldErrors{"day": "must be a non-negative integer"}.err())
		}
		day = parsed
	}

	m, err := h.routeUC.Map(c.Context(), c.Params("slug"), day)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, m, nil)
}
