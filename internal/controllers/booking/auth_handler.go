package booking

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/outreachly/demo-booking-sync/internal/richerrors"
)

// AdminAuthMiddleware gates the administrative endpoints behind a shared
// token compared in constant time. With no token configured the endpoints
// are disabled outright rather than left open.
func AdminAuthMiddleware(token string) fiber.Handler {
	expected := []byte(token)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return richerrors.Error{
				ExternalMsg: "Admin API is disabled",
				Err:         fiber.ErrServiceUnavailable,
				Code:        fiber.StatusServiceUnavailable,
			}
		}
		provided := []byte(c.Get(AdminTokenHeader))
		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			return richerrors.Error{
				ExternalMsg: "Unauthorized",
				Err:         fiber.ErrUnauthorized,
				Code:        fiber.StatusUnauthorized,
			}
		}
		return c.Next()
	}
}
