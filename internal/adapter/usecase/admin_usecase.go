package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// AdminUseCase implements port.AdminUseCase on top of the repositories.
type AdminUseCase struct {
	campaigns   port.CampaignRepository
	advertisers port.AdvertiserRepository
	now         func() time.Time
}

// NewAdminUseCase creates the admin use case.
func NewAdminUseCase(campaigns port.CampaignRepository, advertisers port.AdvertiserRepository) *AdminUseCase {
	return &AdminUseCase{campaigns: campaigns, advertisers: advertisers, now: time.Now}
}

func (u *AdminUseCase) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaigns(ctx, f)
}

// GetCampaign returns port.ErrCampaignNotFound for unknown ids.
func (u *AdminUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// CreateCampaign assigns an id and timestamps, validates and stores c.
// An empty status defaults to active.
func (u *AdminUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.CreatedAt = u.now().UTC()
	c.UpdatedAt = c.CreatedAt
	return u.campaigns.CreateCampaign(ctx, c)
}

// UpdateCampaign applies patch to the stored campaign and saves it.
func (u *AdminUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, patch port.CampaignPatch) (*domain.Campaign, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(c, patch)
	if err = c.Validate(); err != nil {
		return nil, err
	}
	c.UpdatedAt = u.now().UTC()
	if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *AdminUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return u.campaigns.DeleteCampaign(ctx, id)
}

// CampaignStats counts clicks over the last 24 hours, 7 days and 30 days.
func (u *AdminUseCase) CampaignStats(ctx context.Context, id uuid.UUID) (*port.CampaignStats, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	now := u.now()
	stats := &port.CampaignStats{
		CampaignID:  c.ID,
		Clicks:      c.Clicks,
		Impressions: c.Impressions,
	}
	windows := []struct {
		since time.Time
		dst   *int64
	}{
		{now.Add(-24 * time.Hour), &stats.Clicks24h},
		{now.AddDate(0, 0, -7), &stats.Clicks7d},
		{now.AddDate(0, 0, -30), &stats.Clicks30d},
	}
	for _, w := range windows {
		if *w.dst, err = u.campaigns.CountClicks(ctx, id, w.since); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (u *AdminUseCase) ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	return u.advertisers.ListAdvertisers(ctx)
}

func (u *AdminUseCase) CreateAdvertiser(ctx context.Context, name string) (*domain.Advertiser, error) {
	a := &domain.Advertiser{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		CreatedAt: u.now().UTC(),
	}
	if err := u.advertisers.CreateAdvertiser(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeactivateAdvertiser marks the advertiser inactive. Its campaigns are
// left untouched.
func (u *AdminUseCase) DeactivateAdvertiser(ctx context.Context, id uuid.UUID) error {
	return u.advertisers.SetAdvertiserActive(ctx, id, false)
}

// applyPatch copies the set fields of p onto c. Moving a campaign out of
// the feed slots drops its tier position.
func applyPatch(c *domain.Campaign, p port.CampaignPatch) {
	set(&c.Name, p.Name)
	set(&c.Slot, p.Slot)
	set(&c.StartDate, p.StartDate)
	set(&c.EndDate, p.EndDate)
	set(&c.Status, p.Status)
	set(&c.Creative.ImageURL, p.ImageURL)
	set(&c.Creative.VideoURL, p.VideoURL)
	set(&c.Creative.DestinationURL, p.DestinationURL)
	set(&c.Creative.Description, p.Description)
	set(&c.Creative.ButtonText, p.ButtonText)
	set(&c.Creative.BadgeText, p.BadgeText)
	set(&c.Creative.Verified, p.Verified)
	setNullable(&c.Position, p.Position, p.ClearPosition)
	setNullable(&c.FeedTier, p.FeedTier, p.ClearFeedTier)
	setNullable(&c.TierSlot, p.TierSlot, p.ClearTierSlot)
	setNullable(&c.IsVisible, p.IsVisible, p.ClearIsVisible)
	if !c.Slot.IsFeed() {
		c.FeedTier, c.TierSlot = nil, nil
	}
}

func setNullable[T any](dst **T, v *T, clear bool) {
	switch {
	case clear:
		*dst = nil
	case v != nil:
		*dst = v
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
