package slot

import (
	"context"
	"fmt"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/middleware"
	"kingdom_backend/internal/model"
	"kingdom_backend/internal/service"
)

// State текущие ресурсы игрока
func (s *serv) State(ctx context.Context) (*model.PlayerState, error) {
	playerID, ok := middleware.PlayerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNoPlayerID
	}

	state, err := s.loadState(ctx, playerID, false)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// History последние спины игрока, limit 0 - значение по умолчанию
func (s *serv) History(ctx context.Context, limit int) ([]model.SpinRecord, error) {
	playerID, ok := middleware.PlayerIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNoPlayerID
	}

	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 0 || limit > maxHistoryLimit {
		return nil, fmt.Errorf("%w: %d", service.ErrInvalidLimit, limit)
	}

	records, err := s.historyRepo.ListByPlayer(ctx, playerID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("list spin history: %w", err)
	}
	return records, nil
}

func (s *serv) Tiers() []engine.BetTier {
	return s.engine.Tiers().Tiers()
}

// Symbols справка по символам с весами в порядке таблицы
func (s *serv) Symbols() []model.SymbolInfo {
	weights := s.engine.Weights()
	entries := weights.Entries()

	infos := make([]model.SymbolInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, model.SymbolInfo{
			Symbol:      e.Symbol,
			Name:        e.Symbol.DisplayName(),
			Emoji:       e.Symbol.Emoji(),
			Color:       e.Symbol.Color(),
			Weight:      e.Weight,
			Probability: weights.Probability(e.Symbol),
		})
	}
	return infos
}

func (s *serv) Stats() model.SlotStats {
	return s.statsRepo.Snapshot()
}
