package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/metrics"
)

// PlacementUseCase resolves which campaign renders in a slot. It implements
// port.PlacementUseCase. Ads are optional page content, so every storage
// error is logged and turned into an empty result.
type PlacementUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewPlacementUseCase creates a resolver backed by repo.
func NewPlacementUseCase(repo port.CampaignRepository, logger *slog.Logger) *PlacementUseCase {
	return &PlacementUseCase{repo: repo, logger: logger, now: time.Now}
}

// GetSingleSlotCampaign returns the newest live campaign of a CTA slot.
// Non-CTA slot names yield nil without touching the store.
func (u *PlacementUseCase) GetSingleSlotCampaign(ctx context.Context, slot string) *port.CTACampaign {
	s := domain.Slot(slot)
	if !s.IsCTA() {
		return nil
	}
	camps, err := u.findLive(ctx, "cta", s, 1)
	if err != nil || len(camps) == 0 {
		return nil
	}
	c := camps[0]
	return &port.CTACampaign{
		ID:             c.ID,
		DestinationURL: c.Creative.DestinationURL,
		Description:    c.Creative.Description,
		ButtonText:     c.Creative.ButtonText,
	}
}

// GetBannerCampaigns returns up to two live campaigns of a banner slot.
func (u *PlacementUseCase) GetBannerCampaigns(ctx context.Context, slot string) []port.BannerCampaign {
	s := domain.Slot(slot)
	if !s.IsBanner() {
		return []port.BannerCampaign{}
	}
	camps, err := u.findLive(ctx, "banner", s, 2)
	if err != nil {
		return []port.BannerCampaign{}
	}
	out := make([]port.BannerCampaign, 0, len(camps))
	for _, c := range camps {
		out = append(out, port.BannerCampaign{
			ID:             c.ID,
			CreativeURL:    c.Creative.MediaURL(),
			DestinationURL: c.Creative.DestinationURL,
		})
	}
	return out
}

// GetFeedPreview picks the newest video creative and the newest image
// creative among the live feed campaigns.
func (u *PlacementUseCase) GetFeedPreview(ctx context.Context) port.FeedPreview {
	var preview port.FeedPreview
	camps, err := u.findLive(ctx, "feed_preview", domain.SlotFeed, 0)
	if err != nil {
		return preview
	}
	for i := range camps {
		c := &camps[i]
		switch {
		case c.Creative.HasVideo():
			if preview.Video == nil {
				preview.Video = feedCreative(c)
			}
		case c.Creative.ImageURL != "":
			if preview.Image == nil {
				preview.Image = feedCreative(c)
			}
		}
		if preview.Video != nil && preview.Image != nil {
			break
		}
	}
	return preview
}

// GetFeed returns the live campaigns of a feed slot that hold a tier
// position, ordered by tier and tier slot.
func (u *PlacementUseCase) GetFeed(ctx context.Context, slot string) []port.FeedItem {
	s := domain.Slot(slot)
	if !s.IsFeed() {
		return []port.FeedItem{}
	}
	camps, err := u.findLive(ctx, "feed", s, 0)
	if err != nil {
		return []port.FeedItem{}
	}
	items := make([]port.FeedItem, 0, len(camps))
	for i := range camps {
		c := &camps[i]
		if c.FeedTier == nil || c.TierSlot == nil {
			continue
		}
		items = append(items, port.FeedItem{
			FeedCreative: *feedCreative(c),
			Tier:         *c.FeedTier,
			TierSlot:     *c.TierSlot,
		})
	}
	slices.SortStableFunc(items, func(a, b port.FeedItem) int {
		return cmp.Or(cmp.Compare(a.Tier, b.Tier), cmp.Compare(a.TierSlot, b.TierSlot))
	})
	return items
}

// RecordImpressions increments the impression counters of ids.
func (u *PlacementUseCase) RecordImpressions(ctx context.Context, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	if err := u.repo.AddImpressions(ctx, ids); err != nil {
		u.logger.Warn("record impressions failed", slog.Int("count", len(ids)), slog.Any("error", err))
	}
}

// findLive queries the store and re-applies the live predicate to its
// rows, so a campaign that is not live at now is never served even if the
// store's filter disagrees. limit is applied after filtering.
func (u *PlacementUseCase) findLive(ctx context.Context, kind string, slot domain.Slot, limit int) ([]domain.Campaign, error) {
	now := u.now()
	camps, err := u.repo.FindLive(ctx, port.NewLiveQuery(slot, now, limit))
	if err != nil {
		metrics.RecordLookup(kind, 0, err)
		u.logger.Warn("placement lookup failed",
			slog.String("kind", kind),
			slog.String("slot", string(slot)),
			slog.Any("error", err))
		return nil, err
	}
	live := camps[:0]
	for _, c := range camps {
		if c.Slot == slot && c.IsLive(now) {
			live = append(live, c)
		}
	}
	if dropped := len(camps) - len(live); dropped > 0 {
		u.logger.Warn("store returned campaigns that are not live",
			slog.String("slot", string(slot)),
			slog.Int("dropped", dropped))
	}
	if limit > 0 && len(live) > limit {
		live = live[:limit]
	}
	metrics.RecordLookup(kind, len(live), nil)
	return live, nil
}

func feedCreative(c *domain.Campaign) *port.FeedCreative {
	return &port.FeedCreative{
		ID:             c.ID,
		ImageURL:       c.Creative.ImageURL,
		VideoURL:       c.Creative.VideoURL,
		DestinationURL: c.Creative.DestinationURL,
		Description:    c.Creative.Description,
		ButtonText:     c.Creative.ButtonText,
		BadgeText:      c.Creative.BadgeText,
		Verified:       c.Creative.Verified,
	}
}
