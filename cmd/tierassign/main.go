// Command tierassign runs feed tier assignment once and exits. It is
// meant to be scheduled by cron or a Kubernetes CronJob.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"erogram-ads/internal/adapter/postgres"
	"erogram-ads/internal/app"
	"erogram-ads/internal/config"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/db"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(
		slog.String("env", cfg.Env),
		slog.String("cmd", "tierassign"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	tiers, rdb, err := app.NewTierAssigner(ctx, cfg.Redis, cfg.Tiers, postgres.NewCampaignRepository(pool), logger)
	if err != nil {
		logger.Error("tier assigner error", slog.Any("error", err))
		return 1
	}
	if rdb != nil {
		defer rdb.Close()
	}

	report, err := tiers.Run(ctx)
	if errors.Is(err, port.ErrAssignmentRunning) {
		logger.Info("another tier assignment is running, skipping")
		return 0
	}
	if err != nil {
		logger.Error("tier assignment failed", slog.Any("error", err))
		return 1
	}
	failed := 0
	for slot, r := range report.Slots {
		logger.Info("tier assignment done",
			slog.String("slot", slot.String()),
			slog.Int("assigned", r.Assigned),
			slog.Int("archived", r.Archived),
			slog.Int("failed", r.Failed))
		failed += r.Failed
	}
	if failed > 0 {
		return 2
	}
	return 0
}
