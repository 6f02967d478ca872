package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "erogram-ads/internal/adapter/http"
	"erogram-ads/internal/adapter/postgres"
	"erogram-ads/internal/adapter/usecase"
	"erogram-ads/internal/app"
	"erogram-ads/internal/auth"
	"erogram-ads/internal/config"
	"erogram-ads/internal/db"
)

// main is the entry point of the placement server. It loads configuration,
// optionally runs database migrations and seeding, initializes the
// database pool, repositories and use cases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return 1
		}
		logger.Info("demo data seeded")
	}

	campaigns := postgres.NewCampaignRepository(pool)
	advertisers := postgres.NewAdvertiserRepository(pool)

	tiers, rdb, err := app.NewTierAssigner(ctx, cfg.Redis, cfg.Tiers, campaigns, logger)
	if err != nil {
		logger.Error("tier assigner error", slog.Any("error", err))
		return 1
	}
	if rdb != nil {
		defer rdb.Close()
	}

	opts := httpadapter.Options{ClickRateLimit: cfg.HTTP.ClickRateLimit}
	if jm, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL); err == nil {
		opts.Tokens = jm
	} else {
		logger.Warn("admin api disabled", slog.Any("error", err))
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Placements: usecase.NewPlacementUseCase(campaigns, logger),
		Clicks:     usecase.NewClickUseCase(campaigns, logger),
		Admin:      usecase.NewAdminUseCase(campaigns, advertisers),
		Tiers:      tiers,
	}, opts, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return 0
}
