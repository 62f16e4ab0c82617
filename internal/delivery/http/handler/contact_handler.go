package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/pkg/validator"
	"github.com/tourism-portal/internal/usecase/dto"
)

type ContactHandler struct {
	contactUC ContactService
	logger    *zap.Logger
}

func NewContactHandler(contactUC ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
		logger:    logger,
	}
}

// Submit godoc
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 201 {object} utils.SuccessResponse{data=dto.ContactResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.contactUC.Submit(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to store contact message", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}
