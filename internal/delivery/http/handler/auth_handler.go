package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/delivery/http/middleware"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/pkg/validator"
	"github.com/tourism-portal/internal/usecase/dto"
)

// AuthHandler - регистрация, вход, выход и сброс пароля
type AuthHandler struct {
	authUC AuthService
	logger *zap.Logger
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authUC AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account"
// @Success 201 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	token, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, token)
}

// Login godoc
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	token, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, token, nil)
}

// Logout godoc
// @Summary Logout
// @Description Отзывает текущий токен
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	if err := h.authUC.Logout(c.Context(), claims); err != nil {
		h.logger.Error("Failed to revoke token", zap.Error(err))
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestPasswordReset godoc
// @Summary Request password reset
// @Description Всегда 202, чтобы не раскрывать наличие аккаунта
// @Tags Auth
// @Accept json
// @Param request body dto.PasswordResetRequest true "Email"
// @Success 202
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.RequestPasswordReset(c.Context(), req.Email); err != nil {
		// Наружу не отдаём: ответ не должен зависеть от существования аккаунта
		h.logger.Error("Password reset request failed", zap.Error(err))
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// ConfirmPasswordReset godoc
// @Summary Confirm password reset
// @Tags Auth
// @Accept json
// @Param request body dto.PasswordResetConfirmRequest true "Token and new password"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.ConfirmPasswordReset(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
