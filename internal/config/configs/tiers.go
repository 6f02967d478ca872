package configs

import (
	"time"

	"github.com/google/uuid"
)

// Tiers configures the feed tier assignment. Primary and Secondary are the
// advertisers that own tier 1 and tier 2 of the feed and sidebar feed.
type Tiers struct {
	Primary   uuid.UUID     `env:"PRIMARY_ADVERTISER"`
	Secondary uuid.UUID     `env:"SECONDARY_ADVERTISER"`
	LockTTL   time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}
