// Package fibercommon holds the fiber middleware and error handling shared
// by the app wiring and the handler tests.
package fibercommon

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/outreachly/demo-booking-sync/internal/richerrors"
)

// ErrorHandler maps returned errors to structured responses. richerrors
// carry their own status and external message; anything else degrades to a
// 500 with a generic body so internals never leak to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal error."

	var richErr richerrors.Error
	var fiberErr *fiber.Error
	if errors.As(err, &richErr) {
		if richErr.Code != 0 {
			code = richErr.Code
		}
		if richErr.ExternalMsg != "" {
			message = richErr.ExternalMsg
		}
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logger := zerolog.Ctx(c.UserContext())
	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Int("code", code).Msg("Request failed.")
	} else {
		logger.Warn().Err(err).Int("code", code).Msg("Request rejected.")
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

// ContextLoggerMiddleware attaches a request-scoped logger to the user
// context so handlers can log through zerolog.Ctx.
func ContextLoggerMiddleware(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqLogger := logger.With().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(reqLogger.WithContext(c.UserContext()))
		return c.Next()
	}
}
