package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"

	"github.com/outreachly/demo-booking-sync/internal/config"
	"github.com/outreachly/demo-booking-sync/internal/controllers/booking"
	"github.com/outreachly/demo-booking-sync/internal/db"
	"github.com/outreachly/demo-booking-sync/internal/fibercommon"
	"github.com/outreachly/demo-booking-sync/internal/services/demorepo"
	"github.com/outreachly/demo-booking-sync/internal/services/signature"
	"github.com/outreachly/demo-booking-sync/internal/services/synchronizer"
)

const shutdownTimeout = 5 * time.Second

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store, err := db.Open(ctx, settings.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := demorepo.NewRepository(store)
	sync := synchronizer.New(repo)
	verifier := signature.NewVerifier(settings.WebhookSigningSecret, settings.WebhookTimestampTolerance)
	if settings.WebhookSigningSecret == "" {
		logger.Warn().Msg("WEBHOOK_SIGNING_SECRET is not set; webhook deliveries will be rejected")
	}
	if settings.AdminAPIToken == "" {
		logger.Warn().Msg("ADMIN_API_TOKEN is not set; admin endpoints are disabled")
	}

	app, err := CreateFiberApp(logger, store, repo, sync, verifier, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, store *bun.DB,
	repo *demorepo.Repository,
	sync *synchronizer.Synchronizer,
	verifier *signature.Verifier,
	settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting Demo Booking Sync API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware(logger))

	webhookController := booking.NewWebhookController(verifier, sync)
	demoRequestController := booking.NewDemoRequestController(repo)
	logger.Info().Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.PingContext(c.Context()); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	// Provider-facing delivery endpoint.
	app.Post("/webhooks/demo-booking", webhookController.HandleBookingEvent)

	// Public submission flow.
	app.Post("/v1/demo-requests", demoRequestController.CreateDemoRequest)

	// Manual status edits.
	admin := app.Group("/v1/admin", booking.AdminAuthMiddleware(settings.AdminAPIToken))
	admin.Get("/demo-requests/:requestId", demoRequestController.GetDemoRequest)
	admin.Patch("/demo-requests/:requestId/status", demoRequestController.UpdateDemoRequestStatus)

	return app, nil
}

// RunFiber starts the fiber app in the given errgroup and shuts it down when
// the context is canceled.
func RunFiber(ctx context.Context, group *errgroup.Group, app *fiber.App, addr string) {
	group.Go(func() error {
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("failed to run fiber server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down fiber server: %w", err)
		}
		return nil
	})
}
