package env

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
)

type logConfig struct {
	LevelName string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"LOG_FORMAT" default:"text"`
	level     log.Level
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}

	lvl, err := log.ParseLevel(cfg.LevelName)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.level = lvl

	switch cfg.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.Format)
	}

	return &cfg, nil
}

func (cfg *logConfig) Level() log.Level {
	return cfg.level
}

func (cfg *logConfig) JSON() bool {
	return cfg.Format == "json"
}
