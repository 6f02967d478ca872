package port

import (
	"context"

	"github.com/google/uuid"
)

// PlacementUseCase answers "what should render in slot X right now?".
// Every method fails open: storage errors are logged by the implementation
// and reported as absence, so page rendering never depends on ads.
type PlacementUseCase interface {
	// GetSingleSlotCampaign returns the newest live campaign of a text-only
	// CTA slot, or nil when there is none or the slot is not a CTA slot.
	GetSingleSlotCampaign(ctx context.Context, slot string) *CTACampaign
	// GetBannerCampaigns returns up to two live campaigns of a banner slot,
	// newest first, for client-side rotation.
	GetBannerCampaigns(ctx context.Context, slot string) []BannerCampaign
	// GetFeedPreview returns the newest live video and image campaigns of
	// the feed slot.
	GetFeedPreview(ctx context.Context) FeedPreview
	// GetFeed returns the tiered campaigns of a feed slot ordered by tier
	// and tier slot.
	GetFeed(ctx context.Context, slot string) []FeedItem
	// RecordImpressions increments impression counters. Failures are logged.
	RecordImpressions(ctx context.Context, ids []uuid.UUID)
}

// CTACampaign is the text-only view of a campaign.
type CTACampaign struct {
	ID             uuid.UUID `json:"id"`
	DestinationURL string    `json:"destinationUrl"`
	Description    string    `json:"description"`
	ButtonText     string    `json:"buttonText"`
}

// BannerCampaign is the banner view of a campaign.
type BannerCampaign struct {
	ID             uuid.UUID `json:"id"`
	CreativeURL    string    `json:"creativeUrl"`
	DestinationURL string    `json:"destinationUrl"`
}

// FeedCreative is the feed card view of a campaign.
type FeedCreative struct {
	ID             uuid.UUID `json:"id"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	DestinationURL string    `json:"destinationUrl"`
	Description    string    `json:"description"`
	ButtonText     string    `json:"buttonText"`
	BadgeText      string    `json:"badgeText,omitempty"`
	Verified       bool      `json:"verified"`
}

// FeedPreview carries at most one video and one image creative.
type FeedPreview struct {
	Video *FeedCreative `json:"video"`
	Image *FeedCreative `json:"image"`
}

// FeedItem is a feed creative at its tier position.
type FeedItem struct {
	FeedCreative
	Tier     int `json:"tier"`
	TierSlot int `json:"tierSlot"`
}
