// Package jobs фоновые задачи по расписанию: восстановление энергии и ежедневный бонус.
package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/service"
)

type Scheduler struct {
	cron   *cron.Cron
	cfg    config.EnergyConfig
	energy service.EnergyService
}

func NewScheduler(cfg config.EnergyConfig, energy service.EnergyService) *Scheduler {
	c := cron.New(
		cron.WithLocation(cfg.Timezone()),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log.StandardLogger()))),
	)

	return &Scheduler{
		cron:   c,
		cfg:    cfg,
		energy: energy,
	}
}

// Start регистрирует задачи и запускает планировщик. Ошибка только на невалидном расписании.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.RechargeSchedule(), func() {
		log.Debug("[CRON] spin recharge")
		if _, err := s.energy.RechargeSpins(ctx); err != nil {
			log.WithError(err).Error("[CRON] spin recharge failed")
		}
	})
	if err != nil {
		return fmt.Errorf("recharge schedule %q: %w", s.cfg.RechargeSchedule(), err)
	}

	_, err = s.cron.AddFunc(s.cfg.DailyBonusSchedule(), func() {
		log.Info("[CRON] daily bonus")
		if _, err := s.energy.DailyBonus(ctx); err != nil {
			log.WithError(err).Error("[CRON] daily bonus failed")
		}
	})
	if err != nil {
		return fmt.Errorf("daily bonus schedule %q: %w", s.cfg.DailyBonusSchedule(), err)
	}

	s.cron.Start()
	log.WithField("timezone", s.cfg.Timezone().String()).Info("scheduler started")
	return nil
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}
