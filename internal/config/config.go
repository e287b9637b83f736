package config

import (
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

// Load подгружает .env в окружение. Уже заданные переменные не перезаписываются.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotConfig таблицы слота
type SlotConfig interface {
	Weights() engine.WeightTable
	Tiers() engine.TierTable
	StartingResources() model.StartingResources
	DefaultStripLength() int
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
	MinConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// EnergyConfig восстановление спинов и ежедневный бонус
type EnergyConfig interface {
	RechargeSchedule() string
	RechargeAmount() int
	DailyBonusSchedule() string
	DailyBonusSpins() int
	Timezone() *time.Location
}

type RateLimitConfig interface {
	Requests() int
	Window() time.Duration
}

type LogConfig interface {
	Level() log.Level
	JSON() bool
}
