package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCampaign is wrapped by every error returned from Validate.
var ErrInvalidCampaign = errors.New("invalid campaign")

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusEnded
}

// Campaign represents an advertiser's paid placement in a single slot.
// A campaign is never removed by the placement logic itself; it is moved
// to StatusEnded and kept for reporting.
type Campaign struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID
	Name         string
	Slot         Slot
	Position     *int
	FeedTier     *int // 1-3, feed slots only
	TierSlot     *int // 1-4 within FeedTier
	StartDate    time.Time
	EndDate      time.Time
	Status       Status
	IsVisible    *bool // nil is treated as visible
	Creative     Creative
	Clicks       int64
	Impressions  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Visible reports whether the campaign has not been hidden by an admin.
func (c *Campaign) Visible() bool {
	return c.IsVisible == nil || *c.IsVisible
}

// InWindow reports whether now falls inside the campaign's eligibility
// window. The end date is compared against the start of the current day
// so that a campaign ending at any time today is still shown today.
func (c *Campaign) InWindow(now time.Time) bool {
	return !c.StartDate.After(now) && !c.EndDate.Before(StartOfDay(now))
}

// IsLive reports whether the campaign may be rendered at now.
func (c *Campaign) IsLive(now time.Time) bool {
	return c.Status == StatusActive && c.Visible() && c.InWindow(now)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the invariants that cannot be expressed per field.
func (c *Campaign) Validate() error {
	switch {
	case !c.Slot.Valid():
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidCampaign, c.Slot)
	case !c.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidCampaign, c.Status)
	case c.EndDate.Before(c.StartDate):
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidCampaign)
	case c.FeedTier != nil && (*c.FeedTier < 1 || *c.FeedTier > 3):
		return fmt.Errorf("%w: feed tier must be between 1 and 3", ErrInvalidCampaign)
	case c.TierSlot != nil && (*c.TierSlot < 1 || *c.TierSlot > 4):
		return fmt.Errorf("%w: tier slot must be between 1 and 4", ErrInvalidCampaign)
	case c.Creative.DestinationURL == "":
		return fmt.Errorf("%w: destination url is required", ErrInvalidCampaign)
	}
	return nil
}
