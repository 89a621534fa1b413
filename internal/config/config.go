// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/campaignify/pkg/logger"
	"github.com/dmitrymomot/campaignify/pkg/mailer"
	"github.com/dmitrymomot/campaignify/pkg/mailer/resend"
	"github.com/dmitrymomot/campaignify/pkg/redis"
	"github.com/dmitrymomot/campaignify/pkg/storage"
)

// Config is the complete runtime configuration.
type Config struct {
	Log     logger.Config
	Server  Server
	Cache   Cache
	Redis   redis.Config
	Storage storage.Config
	Resend  resend.Config
	Mailer  mailer.Config

	// Domains restricts rewriting to these hosts. Empty means every host.
	Domains []string `env:"CAMPAIGNIFY_DOMAINS" envSeparator:","`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	BodyLimit       int64         `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HealthTimeout   time.Duration `env:"HTTP_HEALTH_TIMEOUT" envDefault:"5s"`
}

// Cache configures the result cache. Redis is used when configured,
// otherwise results are kept in process memory.
type Cache struct {
	TTL        time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	MaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"10000"`
	Disabled   bool          `env:"CACHE_DISABLED" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
