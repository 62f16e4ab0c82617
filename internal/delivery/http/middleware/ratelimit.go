package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/ratelimit"
	"github.com/tourism-portal/internal/pkg/utils"
)

// RateLimit ограничивает частоту запросов с одного IP
func RateLimit(limiter *ratelimit.KeyedLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return utils.SendError(c, errors.ErrRateLimited)
		}
		return c.Next()
	}
}
