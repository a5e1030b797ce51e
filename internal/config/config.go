package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
)

type Config struct {
	AppEnv             string   `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL        string   `env:"DATABASE_URL" envDefault:"menu.db"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile            string   `env:"LOG_FILE"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	BookingRateLimit   string   `env:"BOOKING_RATE_LIMIT" envDefault:"30-M"`
	Timezone           string   `env:"TIMEZONE" envDefault:"Local"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if _, err := limiter.NewRateFromFormatted(cfg.BookingRateLimit); err != nil {
		return fmt.Errorf("invalid BOOKING_RATE_LIMIT %q: %w", cfg.BookingRateLimit, err)
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if cfg.IsProdLike() && strings.Contains(cfg.DatabaseURL, ":memory:") {
		return fmt.Errorf("in prod/release DATABASE_URL must not be an in-memory database")
	}
	return nil
}

// Location is the zone used to read wall-clock time from price timestamps.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}
