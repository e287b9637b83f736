package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"kingdom_backend/internal/config"
	"kingdom_backend/internal/config/env"
	"kingdom_backend/internal/db/postgres"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает зависимости, применяет миграции и обслуживает HTTP до отмены ctx
func (s *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	if err != nil {
		log.WithError(err).Warn("error loading .env file")
	}
	if err := setupLogger(); err != nil {
		return err
	}
	s.initServiceProvider()
	sp := s.ServiceProvider

	db := sp.DBClient(ctx)
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	scheduler := sp.Scheduler(ctx)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	limiter := sp.RateLimiter()
	defer limiter.Close()

	httpCfg := sp.HTTPCfg()
	srv := &http.Server{
		Addr:         httpCfg.Address(),
		Handler:      sp.Router(ctx),
		ReadTimeout:  httpCfg.ReadTimeout(),
		WriteTimeout: httpCfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server at %s", httpCfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func setupLogger() error {
	cfg, err := env.NewLogConfig()
	if err != nil {
		return err
	}

	log.SetOutput(os.Stdout)
	log.SetLevel(cfg.Level())
	if cfg.JSON() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
