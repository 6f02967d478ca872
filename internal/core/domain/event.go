package domain

import (
	"time"

	"github.com/google/uuid"
)

// Click is an append-only record of a click on a placed campaign.
type Click struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Placement  string // optional label supplied by the page
	CreatedAt  time.Time
}
