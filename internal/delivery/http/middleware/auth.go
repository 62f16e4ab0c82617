package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/utils"
	"github.com/tourism-portal/internal/usecase"
)

const claimsKey = "auth.claims"

// TokenParser проверяет bearer-токен
type TokenParser interface {
	ParseToken(ctx context.Context, raw string) (*usecase.Claims, error)
}

// RequireAuth пропускает только запросы с действующим неотозванным токеном
func RequireAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := parser.ParseToken(c.Context(), raw)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin - только для администраторов. Ставится после RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		if !claims.IsAdmin() {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// Claims возвращает claims текущего запроса или nil
func Claims(c *fiber.Ctx) *usecase.Claims {
	claims, _ := c.Locals(claimsKey).(*usecase.Claims)
	return claims
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
