package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kingdom_backend/internal/engine"
)

// PlayerState ресурсы игрока. Значение неизменяемое: все методы возвращают новое состояние,
// а сохраняет его только сервис.
type PlayerState struct {
	PlayerID         uuid.UUID
	Coins            int64
	Spins            int
	MaxSpins         int
	Shields          int
	AttackCharges    int
	RaidCharges      int
	BonusRounds      int
	AttackMultiplier float64
	TotalSpins       int
	TotalCoinsEarned int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StartingResources стартовые ресурсы нового игрока
type StartingResources struct {
	Coins            int64
	Spins            int
	MaxSpins         int
	AttackMultiplier float64
}

// DefaultStartingResources как в клиенте: 10000 монет, 50 спинов из 50
var DefaultStartingResources = StartingResources{
	Coins:            10000,
	Spins:            50,
	MaxSpins:         50,
	AttackMultiplier: 1,
}

func NewPlayerState(id uuid.UUID, res StartingResources, now time.Time) PlayerState {
	return PlayerState{
		PlayerID:         id,
		Coins:            res.Coins,
		Spins:            res.Spins,
		MaxSpins:         res.MaxSpins,
		AttackMultiplier: res.AttackMultiplier,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ChargeSpin списывает стоимость спина тира
func (s PlayerState) ChargeSpin(tier engine.BetTier) (PlayerState, error) {
	if tier.SpinCost <= 0 {
		return s, fmt.Errorf("%w: spin cost %d", ErrInvalidAmount, tier.SpinCost)
	}
	if s.Spins < tier.SpinCost {
		return s, fmt.Errorf("%w: have %d, tier %s costs %d", ErrNotEnoughSpins, s.Spins, tier.ID, tier.SpinCost)
	}

	s.Spins -= tier.SpinCost
	s.TotalSpins++
	return s, nil
}

// ApplyReward начисляет награду. nil (проигрыш) состояние не меняет.
func (s PlayerState) ApplyReward(r *engine.Reward) PlayerState {
	if r == nil {
		return s
	}

	switch r.Type {
	case engine.RewardCoins, engine.RewardJackpot:
		s.Coins += r.Amount
		s.TotalCoinsEarned += r.Amount
	case engine.RewardAttack:
		s.AttackCharges += int(r.Amount)
	case engine.RewardRaid:
		s.RaidCharges += int(r.Amount)
	case engine.RewardShield:
		s.Shields += int(r.Amount)
	case engine.RewardEnergy:
		// Награда может поднять энергию выше лимита
		s.Spins += int(r.Amount)
	case engine.RewardBonus:
		s.BonusRounds += int(r.Amount)
	}
	return s
}

// Recharge восстановление энергии по таймеру, не выше MaxSpins
func (s PlayerState) Recharge(n int) PlayerState {
	if n <= 0 || s.Spins >= s.MaxSpins {
		return s
	}
	s.Spins += n
	if s.Spins > s.MaxSpins {
		s.Spins = s.MaxSpins
	}
	return s
}

// GrantSpins подарочные спины (ежедневный бонус), лимит не действует
func (s PlayerState) GrantSpins(n int) (PlayerState, error) {
	if n <= 0 {
		return s, fmt.Errorf("%w: %d spins", ErrInvalidAmount, n)
	}
	s.Spins += n
	return s, nil
}
