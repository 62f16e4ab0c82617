package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/usecase/dto"
)

// ListingHandler - публичный каталог
type ListingHandler struct {
	listingUC ListingService
	logger    *zap.Logger
}

// NewListingHandler создает новый ListingHandler
func NewListingHandler(listingUC ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List listings
// @Description Активные объекты каталога. Все фильтры объединяются через AND, без пагинации.
// @Tags Listings
// @Produce json
// @Param categoryId query int false "Category ID"
// @Param region query string false "Region ID or name, e.g. erongo"
// @Param search query string false "Substring of name or description"
// @Param featured query bool false "Only featured"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Listing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	filter, err := parseListingFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	listings, err := h.listingUC.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list listings", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, listings, &utils.Meta{Total: len(listings)})
}

// GetBySlug godoc
// @Summary Get listing
// @Description Объект каталога по slug. Каждый запрос увеличивает счётчик просмотров.
// @Tags Listings
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} utils.SuccessResponse{data=domain.Listing}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{slug} [get]
func (h *ListingHandler) GetBySlug(c *fiber.Ctx) error {
	listing, err := h.listingUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, listing, nil)
}

// GetMedia godoc
// @Summary Get listing media
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.MediaResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id}/media [get]
func (h *ListingHandler) GetMedia(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	media, err := h.listingUC.GetMedia(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewMediaResponses(media), &utils.Meta{Total: len(media)})
}
