package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/pkg/validator"
	"github.com/tourism-portal/internal/usecase/dto"
)

type ChatbotHandler struct {
	chatbotUC ChatbotService
	logger    *zap.Logger
}

func NewChatbotHandler(chatbotUC ChatbotService, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotUC: chatbotUC,
		logger:    logger,
	}
}

// SendMessage godoc
// @Summary Send chatbot message
// @Description Сообщение туристическому ассистенту. Без conversation_id создается новый диалог.
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatMessageRequest true "Message"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChatMessageResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/chatbot/messages [post]
func (h *ChatbotHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.chatbotUC.SendMessage(c.Context(), req)
	if err != nil {
		h.logger.Warn("Chatbot message failed", zap.String("session_id", req.SessionID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
