package slot

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/repository"
	"kingdom_backend/internal/service"
)

const (
	// Максимальная длина ленты анимации
	maxStripLength = 100
	// Лимиты истории спинов
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type serv struct {
	engine      *engine.Engine
	cfg         config.SlotConfig
	playerRepo  repository.PlayerRepository
	historyRepo repository.SpinHistoryRepository
	statsRepo   repository.SlotStatsRepository
	txManager   trm.Manager
	now         func() time.Time
}

// NewSlotService Создать слот 3 барабана с наградами королевства
func NewSlotService(
	eng *engine.Engine,
	cfg config.SlotConfig,
	playerRepo repository.PlayerRepository,
	historyRepo repository.SpinHistoryRepository,
	statsRepo repository.SlotStatsRepository,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		engine:      eng,
		cfg:         cfg,
		playerRepo:  playerRepo,
		historyRepo: historyRepo,
		statsRepo:   statsRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}
