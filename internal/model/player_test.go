package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"kingdom_backend/internal/engine"
)

func newState(spins int) PlayerState {
	s := NewPlayerState(uuid.New(), DefaultStartingResources, time.Unix(0, 0))
	s.Spins = spins
	return s
}

func TestChargeSpin(t *testing.T) {
	tiers := engine.DefaultTierTable()
	x5, _ := tiers.Lookup("x5")

	s := newState(12)
	next, err := s.ChargeSpin(x5)
	if err != nil {
		t.Fatal(err)
	}
	if next.Spins != 2 || next.TotalSpins != 1 {
		t.Errorf("after charge: spins %d, total %d", next.Spins, next.TotalSpins)
	}
	// Исходное значение не меняется
	if s.Spins != 12 || s.TotalSpins != 0 {
		t.Errorf("input state mutated: %+v", s)
	}

	if _, err := next.ChargeSpin(x5); !errors.Is(err, ErrNotEnoughSpins) {
		t.Errorf("err = %v, want ErrNotEnoughSpins", err)
	}
	if _, err := s.ChargeSpin(engine.BetTier{ID: "broken"}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestApplyReward(t *testing.T) {
	tests := []struct {
		reward *engine.Reward
		check  func(PlayerState) bool
	}{
		{&engine.Reward{Type: engine.RewardCoins, Amount: 100}, func(s PlayerState) bool {
			return s.Coins == 10100 && s.TotalCoinsEarned == 100
		}},
		{&engine.Reward{Type: engine.RewardJackpot, Amount: 133000}, func(s PlayerState) bool {
			return s.Coins == 143000 && s.TotalCoinsEarned == 133000
		}},
		{&engine.Reward{Type: engine.RewardAttack, Amount: 3}, func(s PlayerState) bool { return s.AttackCharges == 3 }},
		{&engine.Reward{Type: engine.RewardRaid, Amount: 1}, func(s PlayerState) bool { return s.RaidCharges == 1 }},
		{&engine.Reward{Type: engine.RewardShield, Amount: 2}, func(s PlayerState) bool { return s.Shields == 2 }},
		{&engine.Reward{Type: engine.RewardEnergy, Amount: 9}, func(s PlayerState) bool { return s.Spins == 59 }},
		{&engine.Reward{Type: engine.RewardBonus, Amount: 10}, func(s PlayerState) bool { return s.BonusRounds == 10 }},
	}

	for _, tt := range tests {
		s := newState(50)
		before := s
		got := s.ApplyReward(tt.reward)
		if !tt.check(got) {
			t.Errorf("ApplyReward(%+v) = %+v", *tt.reward, got)
		}
		if s != before {
			t.Errorf("input state mutated")
		}
	}

	s := newState(7)
	if got := s.ApplyReward(nil); got != s {
		t.Errorf("ApplyReward(nil) changed state: %+v", got)
	}
}

func TestRecharge(t *testing.T) {
	tests := []struct {
		spins, n, want int
	}{
		{10, 1, 11},
		{49, 1, 50},
		{49, 5, 50},
		{50, 1, 50},
		{70, 1, 70},
		{10, 0, 10},
	}

	for _, tt := range tests {
		if got := newState(tt.spins).Recharge(tt.n); got.Spins != tt.want {
			t.Errorf("Recharge(%d) from %d = %d, want %d", tt.n, tt.spins, got.Spins, tt.want)
		}
	}
}

func TestGrantSpins(t *testing.T) {
	got, err := newState(50).GrantSpins(20)
	if err != nil || got.Spins != 70 {
		t.Errorf("GrantSpins(20) = %d, %v", got.Spins, err)
	}
	if _, err := newState(50).GrantSpins(0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}
