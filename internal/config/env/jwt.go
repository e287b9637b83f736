package env

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"kingdom_backend/internal/config"
)

type jwtConfig struct {
	AccessTokenKey string        `envconfig:"ACCESS_TOKEN" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_DURATION" default:"24h"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	var cfg jwtConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("jwt config: %w", err)
	}
	if cfg.AccessTokenKey == "" {
		return nil, errors.New("access token secret key not found")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, errors.New("access token duration must be positive")
	}

	return &cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
