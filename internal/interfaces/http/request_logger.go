package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// RequestLogger registra cada petición con zerolog: método, ruta, status y duración.
// 5xx sale como error, 4xx como warn, el resto como debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := log.Debug()
		switch {
		case status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http")
		return err
	}
}
