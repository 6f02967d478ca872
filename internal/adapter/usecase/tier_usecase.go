package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/metrics"
)

const tierLockKey = "tiers:lock"

// TierAssigner re-ranks feed campaigns into tiers by clicks. It implements
// port.TierUseCase. Plans run concurrently; within a plan every write is
// attempted even if earlier ones fail, so a failed write only leaves that
// campaign with its previous assignment until the next run.
type TierAssigner struct {
	repo    port.CampaignRepository
	locker  port.Locker
	lockTTL time.Duration
	plans   []domain.TierPlan
	logger  *slog.Logger
	now     func() time.Time
}

// NewTierAssigner creates a tier assigner for plans. locker may be nil, in
// which case concurrent runs are not guarded.
func NewTierAssigner(repo port.CampaignRepository, locker port.Locker, lockTTL time.Duration, logger *slog.Logger, plans ...domain.TierPlan) *TierAssigner {
	return &TierAssigner{
		repo:    repo,
		locker:  locker,
		lockTTL: lockTTL,
		plans:   plans,
		logger:  logger,
		now:     time.Now,
	}
}

// Run applies every plan and returns the per-slot report. An error is
// returned when the lock is held elsewhere or a plan could not load its
// candidates; the report still contains the plans that completed.
func (u *TierAssigner) Run(ctx context.Context) (*port.TierReport, error) {
	if u.locker != nil {
		release, err := u.locker.Acquire(ctx, tierLockKey, u.lockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				u.logger.Warn("tier lock release failed", slog.Any("error", err))
			}
		}()
	}

	begin := time.Now()
	now := u.now()
	reports := make([]*port.SlotReport, len(u.plans))

	// Plans are independent: a failing plan must not cancel the others.
	var g errgroup.Group
	errs := make([]error, len(u.plans))
	for i, plan := range u.plans {
		g.Go(func() error {
			r, err := u.apply(ctx, plan, now)
			if err != nil {
				errs[i] = fmt.Errorf("tier plan %s: %w", plan.Slot, err)
				return nil
			}
			reports[i] = r
			return nil
		})
	}
	_ = g.Wait()
	err := errors.Join(errs...)
	metrics.TierRunDuration.Observe(time.Since(begin).Seconds())

	report := &port.TierReport{StartedAt: now, Slots: make(map[domain.Slot]*port.SlotReport, len(u.plans))}
	for i, plan := range u.plans {
		if reports[i] != nil {
			report.Slots[plan.Slot] = reports[i]
		}
	}
	if err != nil {
		return report, err
	}
	return report, nil
}

func (u *TierAssigner) apply(ctx context.Context, plan domain.TierPlan, now time.Time) (*port.SlotReport, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	candidates, err := u.repo.FindTierCandidates(ctx, plan.Slot)
	if err != nil {
		return nil, err
	}
	outcome := plan.Apply(candidates, now)
	slot := string(plan.Slot)

	var r port.SlotReport
	for _, a := range outcome.Assigned {
		if err = u.repo.AssignTier(ctx, a); err != nil {
			r.Failed++
			metrics.TierAssignments.WithLabelValues(slot, "failed").Inc()
			u.logger.Error("assign tier failed",
				slog.String("slot", slot),
				slog.String("campaign_id", a.CampaignID.String()),
				slog.Any("error", err))
			continue
		}
		r.Assigned++
		metrics.TierAssignments.WithLabelValues(slot, "assigned").Inc()
	}
	for _, id := range outcome.Archived {
		if err = u.repo.Archive(ctx, id); err != nil {
			r.Failed++
			metrics.TierAssignments.WithLabelValues(slot, "failed").Inc()
			u.logger.Error("archive campaign failed",
				slog.String("slot", slot),
				slog.String("campaign_id", id.String()),
				slog.Any("error", err))
			continue
		}
		r.Archived++
		metrics.TierAssignments.WithLabelValues(slot, "archived").Inc()
	}
	u.logger.Info("tier plan applied",
		slog.String("slot", slot),
		slog.Int("assigned", r.Assigned),
		slog.Int("archived", r.Archived),
		slog.Int("failed", r.Failed))
	return &r, nil
}
