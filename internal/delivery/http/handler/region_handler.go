package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/utils"
)

// RegionHandler - справочник регионов
type RegionHandler struct {
	regionUC RegionService
	logger   *zap.Logger
}

// NewRegionHandler создает новый RegionHandler
func NewRegionHandler(regionUC RegionService, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		regionUC: regionUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List regions
// @Description Все 14 регионов Намибии в фиксированном порядке
// @Tags Regions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Region}
// @Router /api/v1/regions [get]
func (h *RegionHandler) List(c *fiber.Ctx) error {
	regions := h.regionUC.List()
	return utils.SendSuccess(c, regions, &utils.Meta{Total: len(regions)})
}

// Get godoc
// @Summary Get region
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID, e.g. erongo"
// @Success 200 {object} utils.SuccessResponse{data=domain.Region}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{id} [get]
func (h *RegionHandler) Get(c *fiber.Ctx) error {
	region, err := h.regionUC.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, region, nil)
}

// Resolve godoc
// @Summary Resolve region by location
// @Description Определяет регион по названию места. Неизвестное место возвращает found=false.
// @Tags Regions
// @Produce json
// @Param location query string true "Location, e.g. Swakopmund"
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/regions/resolve [get]
func (h *RegionHandler) Resolve(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"fields": map[string]interface{}{"location": "is required"},
		}))
	}
	return utils.SendSuccess(c, h.regionUC.Resolve(location), nil)
}
