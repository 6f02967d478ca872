package port

import (
	"context"
	"errors"
	"time"

	"erogram-ads/internal/core/domain"
)

// ErrAssignmentRunning is returned when another tier assignment holds the lock.
var ErrAssignmentRunning = errors.New("tier assignment already running")

// TierUseCase re-ranks feed campaigns into performance tiers. It is a
// batch operation and is not part of the request path.
type TierUseCase interface {
	// Run applies every tier plan. Per-campaign write failures are counted
	// in the report and do not abort the run.
	Run(ctx context.Context) (*TierReport, error)
}

// TierReport summarises a tier assignment run.
type TierReport struct {
	StartedAt time.Time                   `json:"startedAt"`
	Slots     map[domain.Slot]*SlotReport `json:"slots"`
}

// SlotReport counts the outcome of one plan.
type SlotReport struct {
	Assigned int `json:"assigned"`
	Archived int `json:"archived"`
	Failed   int `json:"failed"`
}

// Locker provides a mutual-exclusion lock shared between processes.
type Locker interface {
	// Acquire takes the lock for at most ttl. It returns
	// ErrAssignmentRunning when the lock is held elsewhere. The returned
	// function releases the lock.
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}
