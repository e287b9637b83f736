package app

import (
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"kingdom_backend/internal/api/health"
	slotAPI "kingdom_backend/internal/api/slot"
	"kingdom_backend/internal/config"
	"kingdom_backend/internal/config/env"
	"kingdom_backend/internal/db/postgres"
	"kingdom_backend/internal/engine"
	"kingdom_backend/internal/jobs"
	"kingdom_backend/internal/middleware"
	"kingdom_backend/internal/repository"
	"kingdom_backend/internal/repository/player_repo"
	"kingdom_backend/internal/repository/slot_stats_repo"
	"kingdom_backend/internal/repository/spin_history_repo"
	"kingdom_backend/internal/service"
	"kingdom_backend/internal/service/energy"
	"kingdom_backend/internal/service/slot"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Slot bits
	slotCfg     config.SlotConfig
	engine      *engine.Engine
	playerRepo  repository.PlayerRepository
	historyRepo repository.SpinHistoryRepository
	statsRepo   repository.SlotStatsRepository
	slotServ    service.SlotService
	slotHand    *slotAPI.Handler

	// Energy bits
	energyCfg  config.EnergyConfig
	energyServ service.EnergyService
	scheduler  *jobs.Scheduler

	// Auth and limits
	jwtCfg       config.JWTConfig
	rateLimitCfg config.RateLimitConfig
	rateLimiter  *middleware.RateLimiter

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := postgres.NewPool(ctx, sp.PgConfig())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfig()
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Engine() *engine.Engine {
	if sp.engine == nil {
		e, err := engine.New(sp.SlotCfg().Weights(), sp.SlotCfg().Tiers())
		if err != nil {
			panic("failed to create reward engine: " + err.Error())
		}
		sp.engine = e
	}
	return sp.engine
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) SpinHistoryRepository(ctx context.Context) repository.SpinHistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = spin_history_repo.NewSpinHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) SlotStatsRepository() repository.SlotStatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = slot_stats_repo.NewSlotStatsRepository(slot_stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.Engine(),
			sp.SlotCfg(),
			sp.PlayerRepository(ctx),
			sp.SpinHistoryRepository(ctx),
			sp.SlotStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) EnergyCfg() config.EnergyConfig {
	if sp.energyCfg == nil {
		cfg, err := env.NewEnergyConfig()
		if err != nil {
			panic("failed to get energy config: " + err.Error())
		}
		sp.energyCfg = cfg
	}
	return sp.energyCfg
}

func (sp *ServiceProvider) EnergyService(ctx context.Context) service.EnergyService {
	if sp.energyServ == nil {
		sp.energyServ = energy.NewEnergyService(sp.EnergyCfg(), sp.PlayerRepository(ctx), sp.TXManager(ctx))
	}
	return sp.energyServ
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *jobs.Scheduler {
	if sp.scheduler == nil {
		sp.scheduler = jobs.NewScheduler(sp.EnergyCfg(), sp.EnergyService(ctx))
	}
	return sp.scheduler
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) RateLimiter() *middleware.RateLimiter {
	if sp.rateLimiter == nil {
		if sp.rateLimitCfg == nil {
			cfg, err := env.NewRateLimitConfig()
			if err != nil {
				panic("failed to get rate limit config: " + err.Error())
			}
			sp.rateLimitCfg = cfg
		}
		sp.rateLimiter = middleware.NewRateLimiter(sp.rateLimitCfg.Requests(), sp.rateLimitCfg.Window())
	}
	return sp.rateLimiter
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger)
		r.Use(middleware.Recovery)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Retry-After"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", health.NewHandler(sp.DBClient(ctx)).Check)

		// Slot endpoints
		slotHandler := sp.SlotHandler(ctx)
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.With(sp.RateLimiter().Handler).Post("/spin", slotHandler.Spin)
			rr.Get("/state", slotHandler.State)
			rr.Get("/history", slotHandler.History)
			rr.Get("/tiers", slotHandler.Tiers)
			rr.Get("/symbols", slotHandler.Symbols)
			rr.Get("/stats", slotHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
