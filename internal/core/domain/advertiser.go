package domain

import (
	"time"

	"github.com/google/uuid"
)

// Advertiser owns zero or more campaigns. Deactivating an advertiser does
// not affect its campaigns.
type Advertiser struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}
