package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMissingCampaignID is returned when a click does not name a campaign.
var ErrMissingCampaignID = errors.New("missing campaign id")

// ClickUseCase records clicks on placed campaigns. There is no
// de-duplication: every call increments the counter.
type ClickUseCase interface {
	// TrackClick increments the campaign click counter and appends a click
	// event. It returns ErrCampaignNotFound for unknown campaigns.
	TrackClick(ctx context.Context, campaignID uuid.UUID, placement string) error

	// RegisterClick tracks a click like TrackClick and returns the
	// campaign's destination URL for redirection.
	RegisterClick(ctx context.Context, campaignID uuid.UUID, placement string) (string, error)
}
