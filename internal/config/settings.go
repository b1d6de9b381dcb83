package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"demo-booking-sync"`
	DatabaseURL string `env:"DATABASE_URL"`

	// WebhookSigningSecret is the secret shared with the scheduling provider.
	// When unset, the webhook endpoint rejects every request with a 500.
	WebhookSigningSecret string `env:"WEBHOOK_SIGNING_SECRET"`
	// WebhookTimestampTolerance bounds how old (or how far in the future) a
	// signed webhook timestamp may be before it is rejected as a replay.
	WebhookTimestampTolerance time.Duration `env:"WEBHOOK_TIMESTAMP_TOLERANCE" envDefault:"5m"`

	// AdminAPIToken guards the manual status-edit endpoints. When unset,
	// those endpoints are disabled.
	AdminAPIToken string `env:"ADMIN_API_TOKEN"`
}

// LoadSettings reads the optional env file and parses Settings from the
// environment. A missing env file is not an error.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings from environment: %w", err)
	}
	return settings, nil
}
