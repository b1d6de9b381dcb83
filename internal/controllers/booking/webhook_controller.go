package booking

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/outreachly/demo-booking-sync/internal/richerrors"
	"github.com/outreachly/demo-booking-sync/internal/services/bookingevents"
	"github.com/outreachly/demo-booking-sync/internal/services/signature"
	"github.com/outreachly/demo-booking-sync/internal/services/synchronizer"
)

// Synchronizer applies one decoded provider event to the store.
type Synchronizer interface {
	Apply(ctx context.Context, event bookingevents.Event) (synchronizer.Result, error)
}

// WebhookController receives the provider's demo-booking webhook: it
// verifies the signature over the exact request bytes, decodes the event,
// and hands it to the synchronizer.
type WebhookController struct {
	verifier *signature.Verifier
	sync     Synchronizer
	now      func() time.Time
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(verifier *signature.Verifier, sync Synchronizer) *WebhookController {
	return &WebhookController{
		verifier: verifier,
		sync:     sync,
		now:      time.Now,
	}
}

// HandleBookingEvent handles POST /webhooks/demo-booking.
// The body must be read byte-for-byte before any JSON parsing because the
// signature is computed over the exact bytes the provider sent.
func (w *WebhookController) HandleBookingEvent(c *fiber.Ctx) error {
	rawBody := c.Body()

	if err := w.verifier.Verify(rawBody, c.Get(SignatureHeader), w.now()); err != nil {
		return signatureError(err)
	}

	event, err := bookingevents.Decode(rawBody)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid event payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	result, err := w.sync.Apply(c.Context(), event)
	if err != nil {
		// Surfaced as a 500 so the provider's retry kicks in; the
		// conditional-update predicates make the retry safe.
		return richerrors.Error{
			ExternalMsg: "Failed to apply event",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	if unrecognized, ok := event.(bookingevents.Unrecognized); ok {
		zerolog.Ctx(c.UserContext()).Info().
			Str("event", unrecognized.Event).
			Msg("Acknowledging unsupported event without applying it")
		return c.Status(fiber.StatusOK).JSON(WebhookAckResponse{Message: "Event ignored"})
	}

	return c.Status(fiber.StatusOK).JSON(WebhookAckResponse{
		Message:  "Event applied",
		Affected: result.Affected,
	})
}

// signatureError maps verifier failures to responses. A missing or
// malformed header is a 400 that stays identical whether or not a secret
// is configured; only a present, parseable signature that fails
// verification earns a 403.
func signatureError(err error) error {
	switch {
	case errors.Is(err, signature.ErrSecretNotConfigured):
		return richerrors.Error{
			ExternalMsg: "Webhook processing is unavailable",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	case errors.Is(err, signature.ErrMissingSignature), errors.Is(err, signature.ErrMalformedSignature):
		return richerrors.Error{
			ExternalMsg: "Invalid signature header",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	default:
		return richerrors.Error{
			ExternalMsg: "Signature verification failed",
			Err:         err,
			Code:        fiber.StatusForbidden,
		}
	}
}
