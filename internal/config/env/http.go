package env

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"

	"kingdom_backend/internal/config"
)

type httpConfig struct {
	Host     string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port     string        `envconfig:"HTTP_PORT" default:"8080"`
	Read     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	Write    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	Shutdown time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	Origins  []string      `envconfig:"HTTP_ALLOWED_ORIGINS" default:"*"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("http config: %w", err)
	}
	if cfg.Port == "" {
		return nil, errors.New("http port not found")
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ReadTimeout() time.Duration {
	return cfg.Read
}

func (cfg *httpConfig) WriteTimeout() time.Duration {
	return cfg.Write
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.Shutdown
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.Origins
}
