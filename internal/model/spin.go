package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kingdom_backend/internal/engine"
)

// SlotSpin запрос на спин. StripLength 0 - длина ленты по умолчанию.
type SlotSpin struct {
	TierID      string
	StripLength int
}

// SlotSpinResult ответ на спин: исход, награда (nil при проигрыше), ленты для анимации и состояние после
type SlotSpinResult struct {
	SpinID  uuid.UUID
	Tier    engine.BetTier
	Outcome engine.Outcome
	Reward  *engine.Reward
	Strips  [engine.Reels][]engine.Symbol
	State   PlayerState
}

// SpinRecord запись истории спинов
type SpinRecord struct {
	ID         uuid.UUID
	PlayerID   uuid.UUID
	TierID     string
	Symbols    [engine.Reels]engine.Symbol
	Category   engine.Category
	Multiplier int
	Reward     *engine.Reward
	CreatedAt  time.Time
}

// SymbolInfo справка по символу для клиента
type SymbolInfo struct {
	Symbol      engine.Symbol
	Name        string
	Emoji       string
	Color       string
	Weight      int
	Probability decimal.Decimal
}
