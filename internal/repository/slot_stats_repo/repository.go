package slot_stats_repo

import (
	"sync"
	"time"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

// DefaultWindowSize размер окна последних спинов для доли выигрышей
const DefaultWindowSize = 500

// StatsRepo агрегаты по спинам в памяти процесса
type StatsRepo struct {
	mtx sync.RWMutex

	totalSpins     int
	totalWins      int
	spinsSpent     int
	winsByCategory map[engine.Category]int
	rewardsByType  map[engine.RewardType]int64
	symbolCounts   map[engine.Symbol]int
	lastJackpotAt  time.Time

	// Кольцевой буфер исходов: true - выигрыш
	window     []bool
	windowPos  int
	windowWins int
}

// NewSlotStatsRepository windowSize <= 0 заменяется на DefaultWindowSize
func NewSlotStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		winsByCategory: make(map[engine.Category]int),
		rewardsByType:  make(map[engine.RewardType]int64),
		symbolCounts:   make(map[engine.Symbol]int),
		window:         make([]bool, 0, windowSize),
	}
}

// Record учитывает спин
func (r *StatsRepo) Record(outcome engine.Outcome, reward *engine.Reward, spinCost int, at time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalSpins++
	r.spinsSpent += spinCost
	for _, s := range outcome.Symbols {
		r.symbolCounts[s]++
	}

	if outcome.IsWin {
		r.totalWins++
		r.winsByCategory[outcome.Category]++
		if outcome.Category == engine.CategoryJackpot {
			r.lastJackpotAt = at
		}
	}
	if reward != nil {
		r.rewardsByType[reward.Type] += reward.Amount
	}

	// Поддерживаем размер окна
	if len(r.window) < cap(r.window) {
		r.window = append(r.window, outcome.IsWin)
	} else {
		if r.window[r.windowPos] {
			r.windowWins--
		}
		r.window[r.windowPos] = outcome.IsWin
		r.windowPos = (r.windowPos + 1) % len(r.window)
	}
	if outcome.IsWin {
		r.windowWins++
	}
}

// Snapshot копия агрегатов
func (r *StatsRepo) Snapshot() model.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.SlotStats{
		TotalSpins:     r.totalSpins,
		TotalWins:      r.totalWins,
		SpinsSpent:     r.spinsSpent,
		WinsByCategory: make(map[engine.Category]int, len(r.winsByCategory)),
		RewardsByType:  make(map[engine.RewardType]int64, len(r.rewardsByType)),
		SymbolCounts:   make(map[engine.Symbol]int, len(r.symbolCounts)),
		WindowSize:     len(r.window),
		LastJackpotAt:  r.lastJackpotAt,
	}
	for k, v := range r.winsByCategory {
		stats.WinsByCategory[k] = v
	}
	for k, v := range r.rewardsByType {
		stats.RewardsByType[k] = v
	}
	for k, v := range r.symbolCounts {
		stats.SymbolCounts[k] = v
	}
	if len(r.window) > 0 {
		stats.WindowWinRate = float64(r.windowWins) / float64(len(r.window)) * 100
	}

	return stats
}
