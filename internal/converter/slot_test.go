package converter

import (
	"testing"

	"github.com/shopspring/decimal"

	"kingdom_backend/internal/api/dto/slot"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

func TestToSymbolResponses(t *testing.T) {
	out := ToSymbolResponses([]model.SymbolInfo{{
		Symbol:      engine.Raid,
		Name:        engine.Raid.DisplayName(),
		Emoji:       engine.Raid.Emoji(),
		Color:       engine.Raid.Color(),
		Weight:      15,
		Probability: decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	}})

	if len(out) != 1 || out[0].Symbol != "raid" || out[0].Probability != "33.33" || out[0].Emoji != "🎯" {
		t.Errorf("symbols = %+v", out)
	}
}

func TestToHistoryResponse(t *testing.T) {
	records := []model.SpinRecord{
		{
			TierID:     "x1",
			Symbols:    [3]engine.Symbol{engine.Coin, engine.Coin, engine.Raid},
			Category:   engine.CategoryCoin,
			Multiplier: 1,
			Reward:     &engine.Reward{Type: engine.RewardCoins, Amount: 100},
		},
		{TierID: "x1", Symbols: [3]engine.Symbol{engine.Coin, engine.Attack, engine.Raid}},
	}

	out := ToHistoryResponse(records)
	if len(out.Spins) != 2 {
		t.Fatalf("spins = %d", len(out.Spins))
	}
	if out.Spins[0].Symbols != [3]string{"coin", "coin", "raid"} || *out.Spins[0].Reward != (slot.Reward{Type: "coins", Amount: 100}) {
		t.Errorf("first = %+v", out.Spins[0])
	}
	if out.Spins[1].Reward != nil || out.Spins[1].Category != "none" {
		t.Errorf("second = %+v", out.Spins[1])
	}

	if empty := ToHistoryResponse(nil); empty.Spins == nil {
		t.Error("empty history must encode as []")
	}
}

func TestToStatsResponse(t *testing.T) {
	out := ToStatsResponse(model.SlotStats{
		TotalSpins:     2,
		WinsByCategory: map[engine.Category]int{engine.CategoryJackpot: 1},
		RewardsByType:  map[engine.RewardType]int64{engine.RewardJackpot: 10000},
		SymbolCounts:   map[engine.Symbol]int{engine.Bonus: 3},
	})

	if out.WinsByCategory["jackpot"] != 1 || out.RewardsByType["jackpot"] != 10000 || out.SymbolCounts["bonus"] != 3 {
		t.Errorf("stats = %+v", out)
	}
	if out.LastJackpotAt != nil {
		t.Error("zero time must be omitted")
	}
}
