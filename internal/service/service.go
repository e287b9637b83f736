package service

import (
	"context"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error)
	State(ctx context.Context) (*model.PlayerState, error)
	History(ctx context.Context, limit int) ([]model.SpinRecord, error)
	Tiers() []engine.BetTier
	Symbols() []model.SymbolInfo
	Stats() model.SlotStats
}

// EnergyService фоновые начисления спинов. Возвращают число обновленных игроков.
type EnergyService interface {
	RechargeSpins(ctx context.Context) (int, error)
	DailyBonus(ctx context.Context) (int, error)
}
