package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// RewardType тип награды
type RewardType string

const (
	RewardCoins   RewardType = "coins"
	RewardAttack  RewardType = "attack"
	RewardRaid    RewardType = "raid"
	RewardShield  RewardType = "shield"
	RewardEnergy  RewardType = "energy"
	RewardBonus   RewardType = "bonus"
	RewardJackpot RewardType = "jackpot"
)

// Reward награда за выигрышный спин
type Reward struct {
	Type   RewardType
	Amount int64
}

// Wager ставка: сырая сумма от вызывающего и тир, бонус тира применяется только внутри движка
type Wager struct {
	Amount int
	Tier   BetTier
}

var (
	coinBase    = decimal.NewFromInt(100)
	jackpotBase = decimal.NewFromInt(1000)
	energyBase  = decimal.NewFromInt(5)
)

// CalculateReward переводит выигрыш в награду.
// Для проигрыша возвращает nil, nil. Некорректные входные данные (ставка <= 0, множитель атаки
// <= 0 или не число, невалидный тир, несогласованный outcome) - ошибка ErrInvalidArgument,
// чтобы ее нельзя было спутать с проигрышем.
func CalculateReward(outcome Outcome, wager Wager, externalMultiplier float64) (*Reward, error) {
	if wager.Amount <= 0 {
		return nil, fmt.Errorf("%w: bet amount must be positive, got %d", ErrInvalidArgument, wager.Amount)
	}
	if err := wager.Tier.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(externalMultiplier) || math.IsInf(externalMultiplier, 0) || externalMultiplier <= 0 {
		return nil, fmt.Errorf("%w: external multiplier must be positive, got %v", ErrInvalidArgument, externalMultiplier)
	}

	if err := outcome.validate(); err != nil {
		return nil, err
	}
	if !outcome.IsWin {
		return nil, nil
	}

	rm := wager.Tier.RewardMultiplier()
	mult := decimal.NewFromInt(int64(outcome.Multiplier))
	bet := decimal.NewFromInt(int64(wager.Amount))
	extra := int64(wager.Tier.ExtraSpins)

	switch outcome.Category {
	case CategoryCoin:
		return &Reward{Type: RewardCoins, Amount: bet.Mul(mult).Mul(coinBase).Mul(rm).Round(0).IntPart()}, nil

	case CategoryAttack:
		// От ставки не зависит
		return &Reward{Type: RewardAttack, Amount: decimal.NewFromFloat(externalMultiplier).Ceil().IntPart()}, nil

	case CategoryRaid:
		return &Reward{Type: RewardRaid, Amount: 1}, nil

	case CategoryShield:
		return &Reward{Type: RewardShield, Amount: mult.Mul(rm).Ceil().IntPart()}, nil

	case CategoryEnergy:
		return &Reward{Type: RewardEnergy, Amount: mult.Mul(energyBase).Mul(rm).Ceil().IntPart() + extra}, nil

	case CategoryBonus:
		if extra > 0 {
			return &Reward{Type: RewardBonus, Amount: extra}, nil
		}
		return &Reward{Type: RewardBonus, Amount: 1}, nil

	case CategoryJackpot:
		return &Reward{Type: RewardJackpot, Amount: bet.Mul(mult).Mul(jackpotBase).Mul(rm).Round(0).IntPart()}, nil
	}

	return nil, fmt.Errorf("%w: unknown category %s", ErrInvalidArgument, outcome.Category)
}

// CalculateReward то же, что пакетная функция; ставка берется из тира движка по ID
func (e *Engine) CalculateReward(outcome Outcome, tierID string, externalMultiplier float64) (*Reward, error) {
	tier, err := e.tiers.Lookup(tierID)
	if err != nil {
		return nil, err
	}
	return CalculateReward(outcome, Wager{Amount: tier.BetAmount, Tier: tier}, externalMultiplier)
}
