package energy

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/repository"
	"kingdom_backend/internal/service"
)

// Игроки обрабатываются пачками, каждая пачка в своей транзакции
const batchSize = 500

type serv struct {
	cfg        config.EnergyConfig
	playerRepo repository.PlayerRepository
	txManager  trm.Manager
	now        func() time.Time
}

func NewEnergyService(cfg config.EnergyConfig, playerRepo repository.PlayerRepository, txManager trm.Manager) service.EnergyService {
	return &serv{
		cfg:        cfg,
		playerRepo: playerRepo,
		txManager:  txManager,
		now:        time.Now,
	}
}

// RechargeSpins восстанавливает энергию игрокам ниже лимита.
// Занятые спином игроки пропускаются и получат энергию на следующем тике.
func (s *serv) RechargeSpins(ctx context.Context) (int, error) {
	amount := s.cfg.RechargeAmount()
	filter := repository.PlayerFilter{BelowCapOnly: true, SkipLocked: true}
	n, err := s.forEachBatch(ctx, filter, func(st model.PlayerState) (model.PlayerState, error) {
		return st.Recharge(amount), nil
	})
	if err != nil {
		return n, fmt.Errorf("recharge spins: %w", err)
	}

	log.WithFields(log.Fields{"players": n, "amount": amount}).Info("spins recharged")
	return n, nil
}

// DailyBonus ежедневные бесплатные спины всем игрокам, лимит не действует.
// Бонус раз в сутки, поэтому заблокированные строки ждем, а не пропускаем.
func (s *serv) DailyBonus(ctx context.Context) (int, error) {
	amount := s.cfg.DailyBonusSpins()
	n, err := s.forEachBatch(ctx, repository.PlayerFilter{}, func(st model.PlayerState) (model.PlayerState, error) {
		return st.GrantSpins(amount)
	})
	if err != nil {
		return n, fmt.Errorf("daily bonus: %w", err)
	}

	log.WithFields(log.Fields{"players": n, "amount": amount}).Info("daily bonus granted")
	return n, nil
}

func (s *serv) forEachBatch(ctx context.Context, filter repository.PlayerFilter, apply func(model.PlayerState) (model.PlayerState, error)) (int, error) {
	var (
		total   int
		afterID uuid.UUID
	)

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		var batch, updated int
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			f := filter
			f.AfterID, f.Limit = afterID, batchSize
			states, err := s.playerRepo.ListForUpdate(txCtx, f)
			if err != nil {
				return err
			}

			now := s.now()
			for _, st := range states {
				next, err := apply(st)
				if err != nil {
					return err
				}
				if next.Spins != st.Spins {
					next.UpdatedAt = now
					if err := s.playerRepo.Save(txCtx, next); err != nil {
						return err
					}
					updated++
				}
				afterID = st.PlayerID
			}
			batch = len(states)
			return nil
		})
		if err != nil {
			return total, err
		}
		total += updated
		if batch < batchSize {
			return total, nil
		}
	}
}
