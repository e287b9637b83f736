package env

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"kingdom_backend/internal/config"
)

type rateLimitConfig struct {
	Limit  int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	Period time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1s"`
}

func NewRateLimitConfig() (config.RateLimitConfig, error) {
	var cfg rateLimitConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("rate limit config: %w", err)
	}
	if cfg.Limit <= 0 || cfg.Period <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}

	return &cfg, nil
}

func (cfg *rateLimitConfig) Requests() int {
	return cfg.Limit
}

func (cfg *rateLimitConfig) Window() time.Duration {
	return cfg.Period
}
