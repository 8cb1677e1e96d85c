// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// TaxRate is applied to the subtotal of every bill. Defaults to 0.10.
	TaxRate decimal.Decimal

	// Location is the hotel's time zone. Check-in instants for the
	// cancellation policy are midnight of the check-in date in this zone.
	Location *time.Location

	// TransitionRetries bounds how often a lifecycle operation is retried
	// after losing an optimistic version check. Defaults to 3.
	TransitionRetries int

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RabbitMQURL enables AMQP event publishing when set. When empty,
	// events are written to the log instead.
	RabbitMQURL string

	// EventsExchange is the topic exchange events are published to.
	EventsExchange string

	// MigrateOnStart runs the embedded goose migrations before serving.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "hotel.events"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.TaxRate, err = decimal.NewFromString(getEnv("TAX_RATE", "0.10")); err != nil {
		return Config{}, fmt.Errorf("TAX_RATE: %w", err)
	}
	if cfg.TaxRate.IsNegative() || cfg.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Config{}, fmt.Errorf("TAX_RATE: must be in [0, 1), got %s", cfg.TaxRate)
	}
	if cfg.Location, err = time.LoadLocation(getEnv("HOTEL_TIMEZONE", "UTC")); err != nil {
		return Config{}, fmt.Errorf("HOTEL_TIMEZONE: %w", err)
	}
	if cfg.TransitionRetries, err = getInt("TRANSITION_RETRIES", 3); err != nil {
		return Config{}, err
	}
	if cfg.TransitionRetries < 1 {
		return Config{}, fmt.Errorf("TRANSITION_RETRIES: must be at least 1, got %d", cfg.TransitionRetries)
	}
	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	if maxBody < 1 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES: must be positive, got %d", maxBody)
	}
	cfg.MaxBodyBytes = int64(maxBody)
	if cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "false")); err != nil {
		return Config{}, fmt.Errorf("MIGRATE_ON_START: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
