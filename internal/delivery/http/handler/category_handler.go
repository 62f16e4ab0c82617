package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/usecase/dto"
)

// CategoryHandler - публичные категории
type CategoryHandler struct {
	categoryUC CategoryService
	logger     *zap.Logger
}

// NewCategoryHandler создает новый CategoryHandler
func NewCategoryHandler(categoryUC CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List categories
// @Description Активные категории в порядке отображения
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CategoryResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewCategoryResponses(categories), &utils.Meta{Total: len(categories)})
}

// GetBySlug godoc
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	category, err := h.categoryUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCategoryResponse(*category), nil)
}
