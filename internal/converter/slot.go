package converter

import (
	"kingdom_backend/internal/api/dto/slot"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

// Проценты в ответе /symbols с двумя знаками
const probabilityPlaces = 2

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		TierID:      req.Tier,
		StripLength: req.StripLength,
	}
}

func ToSpinResponse(res model.SlotSpinResult) slot.SpinResponse {
	out := slot.SpinResponse{
		SpinID:     res.SpinID.String(),
		Tier:       res.Tier.ID,
		Symbols:    toSymbolNames(res.Outcome.Symbols),
		IsWin:      res.Outcome.IsWin,
		Category:   res.Outcome.Category.String(),
		Multiplier: res.Outcome.Multiplier,
		Reward:     toReward(res.Reward),
		State:      ToStateResponse(res.State),
	}
	for i, strip := range res.Strips {
		names := make([]string, len(strip))
		for j, s := range strip {
			names[j] = s.String()
		}
		out.Strips[i] = names
	}
	return out
}

func ToStateResponse(s model.PlayerState) slot.StateResponse {
	return slot.StateResponse{
		PlayerID:         s.PlayerID.String(),
		Coins:            s.Coins,
		Spins:            s.Spins,
		MaxSpins:         s.MaxSpins,
		Shields:          s.Shields,
		AttackCharges:    s.AttackCharges,
		RaidCharges:      s.RaidCharges,
		BonusRounds:      s.BonusRounds,
		AttackMultiplier: s.AttackMultiplier,
		TotalSpins:       s.TotalSpins,
		TotalCoinsEarned: s.TotalCoinsEarned,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToHistoryResponse(records []model.SpinRecord) slot.HistoryResponse {
	items := make([]slot.HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, slot.HistoryItem{
			SpinID:     r.ID.String(),
			Tier:       r.TierID,
			Symbols:    toSymbolNames(r.Symbols),
			Category:   r.Category.String(),
			Multiplier: r.Multiplier,
			Reward:     toReward(r.Reward),
			CreatedAt:  r.CreatedAt,
		})
	}
	return slot.HistoryResponse{Spins: items}
}

func ToTierResponses(tiers []engine.BetTier) []slot.TierResponse {
	out := make([]slot.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, slot.TierResponse{
			ID:         t.ID,
			SpinCost:   t.SpinCost,
			BetAmount:  t.BetAmount,
			Bonus:      t.BonusFraction.String(),
			ExtraSpins: t.ExtraSpins,
		})
	}
	return out
}

func ToSymbolResponses(infos []model.SymbolInfo) []slot.SymbolResponse {
	out := make([]slot.SymbolResponse, 0, len(infos))
	for _, i := range infos {
		out = append(out, slot.SymbolResponse{
			Symbol:      i.Symbol.String(),
			Name:        i.Name,
			Emoji:       i.Emoji,
			Color:       i.Color,
			Weight:      i.Weight,
			Probability: i.Probability.Shift(2).StringFixed(probabilityPlaces),
		})
	}
	return out
}

func ToStatsResponse(s model.SlotStats) slot.StatsResponse {
	out := slot.StatsResponse{
		TotalSpins:     s.TotalSpins,
		TotalWins:      s.TotalWins,
		SpinsSpent:     s.SpinsSpent,
		WinsByCategory: make(map[string]int, len(s.WinsByCategory)),
		RewardsByType:  make(map[string]int64, len(s.RewardsByType)),
		SymbolCounts:   make(map[string]int, len(s.SymbolCounts)),
		WindowSize:     s.WindowSize,
		WindowWinRate:  s.WindowWinRate,
	}
	for k, v := range s.WinsByCategory {
		out.WinsByCategory[k.String()] = v
	}
	for k, v := range s.RewardsByType {
		out.RewardsByType[string(k)] = v
	}
	for k, v := range s.SymbolCounts {
		out.SymbolCounts[k.String()] = v
	}
	if !s.LastJackpotAt.IsZero() {
		at := s.LastJackpotAt
		out.LastJackpotAt = &at
	}
	return out
}

func toSymbolNames(symbols [engine.Reels]engine.Symbol) [3]string {
	var out [3]string
	for i, s := range symbols {
		out[i] = s.String()
	}
	return out
}

func toReward(r *engine.Reward) *slot.Reward {
	if r == nil {
		return nil
	}
	return &slot.Reward{Type: string(r.Type), Amount: r.Amount}
}
