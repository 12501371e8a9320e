package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// DisplayTimezone is the timezone posted dates are converted to on
	// reads. Storage stays UTC.
	DisplayTimezone string `env:"DISPLAY_TZ, default=Europe/Zurich"`

	JWT      JWTConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	Issuer   string        `env:"JWT_ISSUER,   default=newsdesk"`
	Audience string        `env:"JWT_AUDIENCE, default=newsdesk-clients"`
	TTL      time.Duration `env:"JWT_TTL,      default=5m"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=newsdesk"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB,       default=newsdesk"`
	UseSSL   bool   `env:"POSTGRES_SSL,      default=false"`
}

type RedisConfig struct {
	// Addr left empty disables Redis-backed features (login throttle,
	// readiness check).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type ThrottleConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	Window      time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
