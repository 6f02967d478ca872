package httpadapter

import (
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

type trackClickRequest struct {
	CampaignID string `json:"campaignId" validate:"required,uuid"`
	Placement  string `json:"placement" validate:"max=64"`
}

type impressionsRequest struct {
	CampaignIDs []string `json:"campaignIds" validate:"required,min=1,max=50,dive,uuid"`
}

type advertiserRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type campaignRequest struct {
	AdvertiserID   string    `json:"advertiserId" validate:"required,uuid"`
	Name           string    `json:"name" validate:"max=200"`
	Slot           string    `json:"slot" validate:"required,slot"`
	Position       *int      `json:"position" validate:"omitempty,min=1"`
	FeedTier       *int      `json:"feedTier" validate:"omitempty,min=1,max=3"`
	TierSlot       *int      `json:"tierSlot" validate:"omitempty,min=1,max=4"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Status         string    `json:"status" validate:"omitempty,oneof=active ended"`
	IsVisible      *bool     `json:"isVisible"`
	ImageURL       string    `json:"imageUrl" validate:"omitempty,url"`
	VideoURL       string    `json:"videoUrl" validate:"omitempty,url"`
	DestinationURL string    `json:"destinationUrl" validate:"required,url"`
	Description    string    `json:"description" validate:"max=500"`
	ButtonText     string    `json:"buttonText" validate:"max=60"`
	BadgeText      string    `json:"badgeText" validate:"max=40"`
	Verified       bool      `json:"verified"`
}

func (req campaignRequest) toDomain() *domain.Campaign {
	return &domain.Campaign{
		AdvertiserID: uuid.MustParse(req.AdvertiserID),
		Name:         req.Name,
		Slot:         domain.Slot(req.Slot),
		Position:     req.Position,
		FeedTier:     req.FeedTier,
		TierSlot:     req.TierSlot,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       domain.Status(req.Status),
		IsVisible:    req.IsVisible,
		Creative: domain.Creative{
			ImageURL:       req.ImageURL,
			VideoURL:       req.VideoURL,
			DestinationURL: req.DestinationURL,
			Description:    req.Description,
			ButtonText:     req.ButtonText,
			BadgeText:      req.BadgeText,
			Verified:       req.Verified,
		},
	}
}

// campaignPatchRequest mirrors campaignRequest with every field optional.
// Cross-field rules are checked by the domain after the patch is applied.
type campaignPatchRequest struct {
	Name           *string    `json:"name" validate:"omitempty,max=200"`
	Slot           *string    `json:"slot" validate:"omitempty,slot"`
	Position       *int       `json:"position" validate:"omitempty,min=1"`
	FeedTier       *int       `json:"feedTier" validate:"omitempty,min=1,max=3"`
	TierSlot       *int       `json:"tierSlot" validate:"omitempty,min=1,max=4"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active ended"`
	IsVisible      *bool      `json:"isVisible"`
	ImageURL       *string    `json:"imageUrl" validate:"omitempty,url"`
	VideoURL       *string    `json:"videoUrl" validate:"omitempty,url"`
	DestinationURL *string    `json:"destinationUrl" validate:"omitempty,url"`
	Description    *string    `json:"description" validate:"omitempty,max=500"`
	ButtonText     *string    `json:"buttonText" validate:"omitempty,max=60"`
	BadgeText      *string    `json:"badgeText" validate:"omitempty,max=40"`
	Verified       *bool      `json:"verified"`
	// Clear names nullable fields to reset to null.
	Clear []string `json:"clear" validate:"omitempty,max=4,dive,oneof=position feedTier tierSlot isVisible"`
}

func (req campaignPatchRequest) toPatch() port.CampaignPatch {
	p := port.CampaignPatch{
		Name:           req.Name,
		Position:       req.Position,
		FeedTier:       req.FeedTier,
		TierSlot:       req.TierSlot,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsVisible:      req.IsVisible,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
		DestinationURL: req.DestinationURL,
		Description:    req.Description,
		ButtonText:     req.ButtonText,
		BadgeText:      req.BadgeText,
		Verified:       req.Verified,
	}
	if req.Slot != nil {
		s := domain.Slot(*req.Slot)
		p.Slot = &s
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		p.Status = &s
	}
	for _, f := range req.Clear {
		switch f {
		case "position":
			p.ClearPosition = true
		case "feedTier":
			p.ClearFeedTier = true
		case "tierSlot":
			p.ClearTierSlot = true
		case "isVisible":
			p.ClearIsVisible = true
		}
	}
	return p
}
