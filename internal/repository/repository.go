package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/model"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerFilter выборка игроков пачками по возрастанию player_id
type PlayerFilter struct {
	AfterID      uuid.UUID
	Limit        uint64
	BelowCapOnly bool // только игроки со spins < max_spins
	SkipLocked   bool // строки, заблокированные другими транзакциями, пропускаются вместо ожидания
}

type PlayerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (model.PlayerState, error)
	// GetForUpdate блокирует строку до конца транзакции
	GetForUpdate(ctx context.Context, id uuid.UUID) (model.PlayerState, error)
	// Create вставляет состояние, если игрока еще нет, и возвращает актуальную строку
	Create(ctx context.Context, state model.PlayerState) (model.PlayerState, error)
	Save(ctx context.Context, state model.PlayerState) error
	// ListForUpdate пачка строк под блокировкой до конца транзакции
	ListForUpdate(ctx context.Context, filter PlayerFilter) ([]model.PlayerState, error)
}

type SpinHistoryRepository interface {
	Save(ctx context.Context, rec model.SpinRecord) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit uint64) ([]model.SpinRecord, error)
}

// SlotStatsRepository агрегаты по спинам в памяти процесса
type SlotStatsRepository interface {
	Record(outcome engine.Outcome, reward *engine.Reward, spinCost int, at time.Time)
	Snapshot() model.SlotStats
}
