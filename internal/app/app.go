package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/health"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

const (
	defaultShutdownTimeout      = 20 * time.Second
	defaultHTTPDrainTimeout     = 10 * time.Second
	defaultObservabilityTimeout = 8 * time.Second
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
	Readiness     *health.ProbeRunner
}

func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	readiness *health.ProbeRunner,
) *App {
	return &App{
		Config:        cfg,
		Logger:        logger,
		Server:        server,
		Observability: runtime,
		DB:            db,
		Redis:         redisClient,
		Readiness:     readiness,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			a.Shutdown(context.Background())
			return err
		}
		return nil
	case <-ctx.Done():
		a.Logger.Info("shutdown signal received")
	}
	a.Shutdown(context.Background())
	return nil
}

// Shutdown drains HTTP, flushes telemetry, then closes Redis and the
// database. Each stage has its own budget carved from the total timeout.
func (a *App) Shutdown(parent context.Context) {
	totalCtx, totalCancel := context.WithTimeout(parent, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownTimeout }, defaultShutdownTimeout))
	defer totalCancel()

	if a.Server != nil {
		httpCtx, cancel := context.WithTimeout(totalCtx, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownHTTPDrainTimeout }, defaultHTTPDrainTimeout))
		if err := a.Server.Shutdown(httpCtx); err != nil {
			a.Logger.Error("failed to shutdown http server", "error", err)
		}
		cancel()
	}

	if a.Observability != nil {
		obsCtx, cancel := context.WithTimeout(totalCtx, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownObservabilityTimeout }, defaultObservabilityTimeout))
		if err := a.Observability.Shutdown(obsCtx); err != nil {
			a.Logger.Error("failed to shutdown observability", "error", err)
		}
		cancel()
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("failed to close redis client", "error", err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Error("failed to close database connection", "error", err)
			}
		}
	}
	a.Logger.Info("shutdown complete")
}

func (a *App) timeout(pick func(*config.Config) time.Duration, fallback time.Duration) time.Duration {
	if a.Config == nil {
		return fallback
	}
	if d := pick(a.Config); d > 0 {
		return d
	}
	return fallback
}
