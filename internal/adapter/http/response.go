package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// campaignView is the admin JSON representation of a campaign.
type campaignView struct {
	ID             uuid.UUID `json:"id"`
	AdvertiserID   uuid.UUID `json:"advertiserId"`
	Name           string    `json:"name"`
	Slot           string    `json:"slot"`
	Position       *int      `json:"position"`
	FeedTier       *int      `json:"feedTier"`
	TierSlot       *int      `json:"tierSlot"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	IsVisible      *bool     `json:"isVisible"`
	ImageURL       string    `json:"imageUrl"`
	VideoURL       string    `json:"videoUrl"`
	DestinationURL string    `json:"destinationUrl"`
	Description    string    `json:"description"`
	ButtonText     string    `json:"buttonText"`
	BadgeText      string    `json:"badgeText"`
	Verified       bool      `json:"verified"`
	Clicks         int64     `json:"clicks"`
	Impressions    int64     `json:"impressions"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newCampaignView(c *domain.Campaign) campaignView {
	return campaignView{
		ID:             c.ID,
		AdvertiserID:   c.AdvertiserID,
		Name:           c.Name,
		Slot:           string(c.Slot),
		Position:       c.Position,
		FeedTier:       c.FeedTier,
		TierSlot:       c.TierSlot,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         string(c.Status),
		IsVisible:      c.IsVisible,
		ImageURL:       c.Creative.ImageURL,
		VideoURL:       c.Creative.VideoURL,
		DestinationURL: c.Creative.DestinationURL,
		Description:    c.Creative.Description,
		ButtonText:     c.Creative.ButtonText,
		BadgeText:      c.Creative.BadgeText,
		Verified:       c.Creative.Verified,
		Clicks:         c.Clicks,
		Impressions:    c.Impressions,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type advertiserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAdvertiserView(a *domain.Advertiser) advertiserView {
	return advertiserView{ID: a.ID, Name: a.Name, Active: a.Active, CreatedAt: a.CreatedAt}
}
