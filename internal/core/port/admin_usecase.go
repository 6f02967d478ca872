package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
)

// AdminUseCase exposes campaign and advertiser management. Unlike the
// placement reads every failure is returned to the caller.
type AdminUseCase interface {
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, id uuid.UUID, patch CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	CampaignStats(ctx context.Context, id uuid.UUID) (*CampaignStats, error)

	ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error)
	CreateAdvertiser(ctx context.Context, name string) (*domain.Advertiser, error)
	DeactivateAdvertiser(ctx context.Context, id uuid.UUID) error
}

// CampaignPatch holds the fields of a partial campaign update. Nil fields
// are left unchanged.
type CampaignPatch struct {
	Name      *string
	Slot      *domain.Slot
	Position  *int
	FeedTier  *int
	TierSlot  *int
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.Status
	IsVisible *bool

	ImageURL       *string
	VideoURL       *string
	DestinationURL *string
	Description    *string
	ButtonText     *string
	BadgeText      *string
	Verified       *bool

	// Clear* reset nullable fields to null and take precedence over the
	// value fields above.
	ClearPosition  bool
	ClearFeedTier  bool
	ClearTierSlot  bool
	ClearIsVisible bool
}

// CampaignStats contains click counts over rolling windows together with
// the lifetime counters stored on the campaign.
type CampaignStats struct {
	CampaignID  uuid.UUID `json:"campaignId"`
	Clicks24h   int64     `json:"clicks24h"`
	Clicks7d    int64     `json:"clicks7d"`
	Clicks30d   int64     `json:"clicks30d"`
	Clicks      int64     `json:"clicks"`
	Impressions int64     `json:"impressions"`
}
