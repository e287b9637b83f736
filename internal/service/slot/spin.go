package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/middleware"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/repository"
	"kingdom_backend/internal/service"
)

// Spin списывает энергию, крутит барабаны и начисляет награду одной транзакцией
func (s *serv) Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error) {
	playerID, ok := middleware.PlayerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNoPlayerID
	}

	tier, err := s.engine.Tiers().Lookup(req.TierID)
	if err != nil {
		return nil, fmt.Errorf("%w %q", service.ErrUnknownTier, req.TierID)
	}

	stripLength := req.StripLength
	if stripLength == 0 {
		stripLength = s.cfg.DefaultStripLength()
	}
	if stripLength < 1 || stripLength > maxStripLength {
		return nil, fmt.Errorf("%w: %d", service.ErrInvalidStripLength, req.StripLength)
	}

	res := &model.SlotSpinResult{
		SpinID: uuid.New(),
		Tier:   tier,
	}

	// Начало транзакции: строка игрока заблокирована до коммита
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadState(txCtx, playerID, true)
		if err != nil {
			return err
		}

		state, err = state.ChargeSpin(tier)
		if err != nil {
			return err
		}

		outcome := s.engine.Spin()
		reward, err := engine.CalculateReward(outcome, engine.Wager{Amount: tier.BetAmount, Tier: tier}, state.AttackMultiplier)
		if err != nil {
			return fmt.Errorf("%w: %v", service.ErrRewardCalculation, err)
		}

		now := s.now()
		state = state.ApplyReward(reward)
		state.UpdatedAt = now
		if err := s.playerRepo.Save(txCtx, state); err != nil {
			return fmt.Errorf("save player state: %w", err)
		}

		err = s.historyRepo.Save(txCtx, model.SpinRecord{
			ID:         res.SpinID,
			PlayerID:   playerID,
			TierID:     tier.ID,
			Symbols:    outcome.Symbols,
			Category:   outcome.Category,
			Multiplier: outcome.Multiplier,
			Reward:     reward,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("save spin history: %w", err)
		}

		res.Outcome, res.Reward, res.State = outcome, reward, state
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Ленты только для анимации, на результат не влияют
	for i, sym := range res.Outcome.Symbols {
		strip, err := s.engine.ReelStrip(sym, stripLength)
		if err != nil {
			return nil, fmt.Errorf("reel strip: %v", err)
		}
		res.Strips[i] = strip
	}

	s.statsRepo.Record(res.Outcome, res.Reward, tier.SpinCost, res.State.UpdatedAt)

	entry := log.WithFields(log.Fields{
		"player_id": playerID,
		"tier":      tier.ID,
		"category":  res.Outcome.Category.String(),
		"spins":     res.State.Spins,
	})
	if res.Reward != nil {
		entry = entry.WithField("reward", fmt.Sprintf("%s:%d", res.Reward.Type, res.Reward.Amount))
	}
	entry.Debug("spin")

	return res, nil
}

// loadState состояние игрока, при первом обращении создается со стартовыми ресурсами
func (s *serv) loadState(ctx context.Context, playerID uuid.UUID, forUpdate bool) (model.PlayerState, error) {
	get := s.playerRepo.Get
	if forUpdate {
		get = s.playerRepo.GetForUpdate
	}

	state, err := get(ctx, playerID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, repository.ErrPlayerNotFound) {
		return model.PlayerState{}, fmt.Errorf("load player state: %w", err)
	}

	if _, err := s.playerRepo.Create(ctx, model.NewPlayerState(playerID, s.cfg.StartingResources(), s.now())); err != nil {
		return model.PlayerState{}, fmt.Errorf("create player state: %w", err)
	}
	log.WithField("player_id", playerID).Info("new player state created")

	return get(ctx, playerID)
}
