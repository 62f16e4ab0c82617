package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/usecase/dto"
)

// AdminHandler - CRUD категорий, объектов и медиа. Валидация выполняется в use case,
// чтобы исходный ввод вернулся в деталях ошибки.
type AdminHandler struct {
	adminUC AdminService
	logger  *zap.Logger
}

// NewAdminHandler создает новый AdminHandler
func NewAdminHandler(adminUC AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// ListCategories godoc
// @Summary Admin: list categories
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CategoryResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/admin/categories [get]
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.adminUC.ListCategories(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCategoryResponses(categories), &utils.Meta{Total: len(categories)})
}

// CreateCategory godoc
// @Summary Admin: create category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} utils.SuccessResponse{data=domain.Category}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/admin/categories [post]
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	category, err := h.adminUC.CreateCategory(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, category)
}

// UpdateCategory godoc
// @Summary Admin: update category
// @Description Полная замена полей категории
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Category"
// @Success 200 {object} utils.SuccessResponse{data=domain.Category}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	category, err := h.adminUC.UpdateCategory(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, category, nil)
}

// DeleteCategory godoc
// @Summary Admin: delete category
// @Description Требует ?confirm=true, иначе 428 CONFIRMATION_REQUIRED
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 428 {object} utils.ErrorResponse
// @Router /api/v1/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.adminUC.DeleteCategory(c.Context(), id, confirmed(c)); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListListings godoc
// @Summary Admin: list listings
// @Description Включая неактивные. Фильтры как у публичного списка.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param categoryId query int false "Category ID"
// @Param region query string false "Region"
// @Param search query string false "Search"
// @Param featured query bool false "Featured"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Listing}
// @Router /api/v1/admin/listings [get]
func (h *AdminHandler) ListListings(c *fiber.Ctx) error {
	filter, err := parseListingFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	listings, err := h.adminUC.ListListings(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, listings, &utils.Meta{Total: len(listings)})
}

// CreateListing godoc
// @Summary Admin: create listing
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ListingRequest true "Listing"
// @Success 201 {object} utils.SuccessResponse{data=domain.Listing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/admin/listings [post]
func (h *AdminHandler) CreateListing(c *fiber.Ctx) error {
	var req dto.ListingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	listing, err := h.adminUC.CreateListing(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, listing)
}

// UpdateListing godoc
// @Summary Admin: update listing
// @Description Полная замена полей объекта
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body dto.ListingRequest true "Listing"
// @Success 200 {object} utils.SuccessResponse{data=domain.Listing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/listings/{id} [put]
func (h *AdminHandler) UpdateListing(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ListingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	listing, err := h.adminUC.UpdateListing(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, listing, nil)
}

// DeleteListing godoc
// @Summary Admin: delete listing
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 428 {object} utils.ErrorResponse
// @Router /api/v1/admin/listings/{id} [delete]
func (h *AdminHandler) DeleteListing(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.adminUC.DeleteListing(c.Context(), id, confirmed(c)); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMedia godoc
// @Summary Admin: list media
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param listingIds query string false "Comma separated listing IDs"
// @Param type query string false "photo | video | vr"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.MediaResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/admin/media [get]
func (h *AdminHandler) ListMedia(c *fiber.Ctx) error {
	filter, err := parseMediaFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	media, err := h.adminUC.ListMedia(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewMediaResponses(media), &utils.Meta{Total: len(media)})
}

// CreateMedia godoc
// @Summary Admin: register media
// @Description Регистрирует медиафайл по URL
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MediaRequest true "Media"
// @Success 201 {object} utils.SuccessResponse{data=domain.Media}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/admin/media [post]
func (h *AdminHandler) CreateMedia(c *fiber.Ctx) error {
	var req dto.MediaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	media, err := h.adminUC.CreateMedia(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, media)
}

// DeleteMedia godoc
// @Summary Admin: delete media
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 428 {object} utils.ErrorResponse
// @Router /api/v1/admin/media/{id} [delete]
func (h *AdminHandler) DeleteMedia(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.adminUC.DeleteMedia(c.Context(), id, confirmed(c)); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
