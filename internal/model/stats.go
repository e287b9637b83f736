package model

import (
	"time"

	"kingdom_backend/internal/engine"
)

// SlotStats агрегаты по всем спинам процесса
type SlotStats struct {
	TotalSpins     int
	TotalWins      int
	SpinsSpent     int
	WinsByCategory map[engine.Category]int
	RewardsByType  map[engine.RewardType]int64
	SymbolCounts   map[engine.Symbol]int

	WindowSize    int     // Размер окна последних спинов
	WindowWinRate float64 // Доля выигрышей в окне, %

	LastJackpotAt time.Time
}
