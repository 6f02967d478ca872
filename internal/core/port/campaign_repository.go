package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAdvertiserNotFound = errors.New("advertiser not found")
)

// CampaignRepository defines the persistence layer for campaigns and their
// click events. It is an outbound port in hexagonal architecture.
// Implementations must be safe for concurrent use; counter updates rely on
// the store's atomic increment rather than application locking.
type CampaignRepository interface {
	// FindLive returns campaigns matching the live filter for q.Slot,
	// newest first. A zero q.Limit means no limit.
	FindLive(ctx context.Context, q LiveQuery) ([]domain.Campaign, error)
	// FindTierCandidates returns every active campaign of the slot,
	// regardless of date window or visibility.
	FindTierCandidates(ctx context.Context, slot domain.Slot) ([]domain.Campaign, error)
	// AssignTier stores the tier position of a campaign.
	AssignTier(ctx context.Context, a domain.Assignment) error
	// Archive ends a campaign and clears its tier position.
	Archive(ctx context.Context, id uuid.UUID) error

	// RecordClick increments the campaign click counter and appends the
	// click event in one transaction. It returns ErrCampaignNotFound when
	// the campaign does not exist.
	RecordClick(ctx context.Context, click *domain.Click) error
	// AddImpressions increments the impression counter of each campaign.
	AddImpressions(ctx context.Context, ids []uuid.UUID) error
	// CountClicks counts click events of a campaign created at or after since.
	CountClicks(ctx context.Context, id uuid.UUID, since time.Time) (int64, error)

	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign overwrites every mutable field of c.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

// AdvertiserRepository stores advertisers.
type AdvertiserRepository interface {
	CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error
	ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error)
	// SetAdvertiserActive returns ErrAdvertiserNotFound for unknown ids.
	SetAdvertiserActive(ctx context.Context, id uuid.UUID, active bool) error
}

// LiveQuery selects campaigns that may be shown right now: status active,
// not hidden, StartDate <= Now and EndDate >= DayStart.
type LiveQuery struct {
	Slot     domain.Slot
	Now      time.Time
	DayStart time.Time
	Limit    int
}

// NewLiveQuery builds the live filter for slot at now.
func NewLiveQuery(slot domain.Slot, now time.Time, limit int) LiveQuery {
	return LiveQuery{Slot: slot, Now: now, DayStart: domain.StartOfDay(now), Limit: limit}
}

// CampaignFilter narrows admin listings. Empty fields match everything.
type CampaignFilter struct {
	Slot   domain.Slot
	Status domain.Status
}
