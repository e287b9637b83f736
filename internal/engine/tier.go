package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BetTier уровень ставки: стоимость спина в энергии, номинальная ставка и бонус к награде
type BetTier struct {
	ID            string
	SpinCost      int
	BetAmount     int
	BonusFraction decimal.Decimal // 0.2 = +20% к награде
	ExtraSpins    int
}

// CanonicalTiers x1 / x2 / x5
var CanonicalTiers = []BetTier{
	{ID: "x1", SpinCost: 1, BetAmount: 1, BonusFraction: decimal.Zero, ExtraSpins: 0},
	{ID: "x2", SpinCost: 3, BetAmount: 2, BonusFraction: decimal.RequireFromString("0.2"), ExtraSpins: 3},
	{ID: "x5", SpinCost: 10, BetAmount: 5, BonusFraction: decimal.RequireFromString("0.33"), ExtraSpins: 10},
}

// RewardMultiplier 1 + BonusFraction
func (t BetTier) RewardMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(t.BonusFraction)
}

func (t BetTier) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: bet tier without id", ErrInvalidArgument)
	case t.SpinCost <= 0:
		return fmt.Errorf("%w: tier %s spin cost must be positive", ErrInvalidArgument, t.ID)
	case t.BetAmount <= 0:
		return fmt.Errorf("%w: tier %s bet amount must be positive", ErrInvalidArgument, t.ID)
	case t.BonusFraction.IsNegative():
		return fmt.Errorf("%w: tier %s bonus must not be negative", ErrInvalidArgument, t.ID)
	case t.ExtraSpins < 0:
		return fmt.Errorf("%w: tier %s extra spins must not be negative", ErrInvalidArgument, t.ID)
	}
	return nil
}

// TierTable упорядоченный набор тиров с поиском по ID
type TierTable struct {
	tiers []BetTier
	byID  map[string]int
}

func NewTierTable(tiers []BetTier) (TierTable, error) {
	if len(tiers) == 0 {
		return TierTable{}, fmt.Errorf("%w: empty tier table", ErrInvalidArgument)
	}

	byID := make(map[string]int, len(tiers))
	cp := make([]BetTier, len(tiers))
	for i, t := range tiers {
		if err := t.Validate(); err != nil {
			return TierTable{}, err
		}
		if _, dup := byID[t.ID]; dup {
			return TierTable{}, fmt.Errorf("%w: duplicate tier %s", ErrInvalidArgument, t.ID)
		}
		byID[t.ID] = i
		cp[i] = t
	}

	return TierTable{tiers: cp, byID: byID}, nil
}

func DefaultTierTable() TierTable {
	t, err := NewTierTable(CanonicalTiers)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup тир по ID, неизвестный тир - ErrInvalidArgument
func (t TierTable) Lookup(id string) (BetTier, error) {
	i, ok := t.byID[id]
	if !ok {
		return BetTier{}, fmt.Errorf("%w: unknown bet tier %q", ErrInvalidArgument, id)
	}
	return t.tiers[i], nil
}

// ByBetAmount тир по номинальной ставке (1, 2, 5)
func (t TierTable) ByBetAmount(amount int) (BetTier, error) {
	for _, tier := range t.tiers {
		if tier.BetAmount == amount {
			return tier, nil
		}
	}
	return BetTier{}, fmt.Errorf("%w: no bet tier with bet amount %d", ErrInvalidArgument, amount)
}

func (t TierTable) Tiers() []BetTier {
	cp := make([]BetTier, len(t.tiers))
	copy(cp, t.tiers)
	return cp
}
