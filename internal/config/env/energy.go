package env

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
)

type energyConfig struct {
	Recharge     string `envconfig:"ENERGY_RECHARGE_SCHEDULE" default:"@every 30m"`
	RechargeBy   int    `envconfig:"ENERGY_RECHARGE_AMOUNT" default:"1"`
	DailyBonus   string `envconfig:"ENERGY_DAILY_BONUS_SCHEDULE" default:"0 0 * * *"`
	DailyBonusBy int    `envconfig:"ENERGY_DAILY_BONUS_SPINS" default:"20"`
	TimezoneName string `envconfig:"APP_TIMEZONE" default:"UTC"`
	location     *time.Location
}

func NewEnergyConfig() (config.EnergyConfig, error) {
	var cfg energyConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("energy config: %w", err)
	}
	if cfg.RechargeBy <= 0 {
		return nil, fmt.Errorf("ENERGY_RECHARGE_AMOUNT must be positive, got %d", cfg.RechargeBy)
	}
	if cfg.DailyBonusBy <= 0 {
		return nil, fmt.Errorf("ENERGY_DAILY_BONUS_SPINS must be positive, got %d", cfg.DailyBonusBy)
	}

	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		log.WithError(err).Warnf("unknown timezone %q, falling back to UTC", cfg.TimezoneName)
		loc = time.UTC
	}
	cfg.location = loc

	return &cfg, nil
}

func (cfg *energyConfig) RechargeSchedule() string {
	return cfg.Recharge
}

func (cfg *energyConfig) RechargeAmount() int {
	return cfg.RechargeBy
}

func (cfg *energyConfig) DailyBonusSchedule() string {
	return cfg.DailyBonus
}

func (cfg *energyConfig) DailyBonusSpins() int {
	return cfg.DailyBonusBy
}

func (cfg *energyConfig) Timezone() *time.Location {
	return cfg.location
}
