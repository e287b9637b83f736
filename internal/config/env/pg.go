package env

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"kingdom_backend/internal/config"
)

type pgConfig struct {
	DSNValue string `envconfig:"PG_DSN" required:"true"`
	Max      int32  `envconfig:"PG_MAX_CONNS" default:"25"`
	Min      int32  `envconfig:"PG_MIN_CONNS" default:"2"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("pg config: %w", err)
	}
	if cfg.DSNValue == "" {
		return nil, errors.New("pg dsn not found")
	}
	if cfg.Max <= 0 || cfg.Min < 0 || cfg.Min > cfg.Max {
		return nil, errors.New("invalid PG_MIN_CONNS/PG_MAX_CONNS")
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.DSNValue
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.Max
}

func (cfg *pgConfig) MinConns() int32 {
	return cfg.Min
}
