// Package app wires adapters shared by the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"erogram-ads/internal/adapter/redislock"
	"erogram-ads/internal/adapter/usecase"
	"erogram-ads/internal/config/configs"
	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// ErrTierAdvertisersUnset is returned when TIERS_PRIMARY_ADVERTISER or
// TIERS_SECONDARY_ADVERTISER is missing.
var ErrTierAdvertisersUnset = errors.New("tier advertisers are not configured")

// TierPlans returns the feed and sidebar plans for the configured
// advertisers.
func TierPlans(cfg configs.Tiers) []domain.TierPlan {
	return []domain.TierPlan{
		domain.FeedPlan(cfg.Primary, cfg.Secondary),
		domain.SidebarPlan(cfg.Primary, cfg.Secondary),
	}
}

// NewTierAssigner builds the tier assigner. When redisCfg.Addr is set runs
// are guarded by a Redis lock and the returned client must be closed by
// the caller; otherwise the client is nil.
func NewTierAssigner(ctx context.Context, redisCfg configs.Redis, tiers configs.Tiers, repo port.CampaignRepository, logger *slog.Logger) (*usecase.TierAssigner, *redis.Client, error) {
	if tiers.Primary == uuid.Nil || tiers.Secondary == uuid.Nil {
		return nil, nil, ErrTierAdvertisersUnset
	}
	if tiers.Primary == tiers.Secondary {
		return nil, nil, errors.New("primary and secondary tier advertisers must differ")
	}
	var (
		locker port.Locker
		client *redis.Client
	)
	if redisCfg.Addr != "" {
		var err error
		client, err = redislock.Connect(ctx, redisCfg.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		locker = redislock.NewLocker(client)
	} else {
		logger.Warn("REDIS_ADDRESS not set, tier runs are not guarded against concurrency")
	}
	plans := TierPlans(tiers)
	return usecase.NewTierAssigner(repo, locker, tiers.LockTTL, logger, plans...), client, nil
}
