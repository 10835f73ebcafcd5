package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hakwon/backend/utils"
)

// LoggingMiddleware tags every request with an id and logs method, path,
// status and latency after the handler chain finishes.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		logger.Printf(
			"%s %s %s %s %s%d\033[0m %v",
			requestID[:8],
			c.IP(),
			c.Method(),
			c.Path(),
			utils.StatusColor(status),
			status,
			time.Since(start),
		)

		return err
	}
}
