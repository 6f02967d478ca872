package domain

import (
	"errors"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestCampaignIsLive(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	base := Campaign{
		Slot:      SlotNavbarCTA,
		Status:    StatusActive,
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 7),
	}

	tests := []struct {
		name   string
		mutate func(c *Campaign)
		want   bool
	}{
		{"active in window", func(c *Campaign) {}, true},
		{"ended", func(c *Campaign) { c.Status = StatusEnded }, false},
		{"hidden", func(c *Campaign) { c.IsVisible = ptr(false) }, false},
		{"explicitly visible", func(c *Campaign) { c.IsVisible = ptr(true) }, true},
		{"not started", func(c *Campaign) { c.StartDate = now.Add(time.Minute) }, false},
		{"starts now", func(c *Campaign) { c.StartDate = now }, true},
		{"ended yesterday 23:59", func(c *Campaign) {
			c.EndDate = time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
		}, false},
		{"ends today 00:01", func(c *Campaign) {
			c.EndDate = time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
		}, true},
		{"ends today at midnight", func(c *Campaign) {
			c.EndDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if got := c.IsLive(now); got != tt.want {
				t.Fatalf("IsLive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, 3, 10, 1, 0, 0, 0, loc) // 2026-03-09 22:00 UTC
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Fatalf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestSlotKinds(t *testing.T) {
	if !SlotNavbarCTA.IsCTA() || SlotNavbarCTA.IsBanner() {
		t.Fatal("navbar-cta must be a cta slot")
	}
	if !SlotTopBanner.IsBanner() {
		t.Fatal("top-banner must be a banner slot")
	}
	if !SlotFeed.IsFeed() || !SlotSidebarFeed.IsFeed() {
		t.Fatal("feed slots must be feed slots")
	}
	if Slot("popup").Valid() {
		t.Fatal("unknown slot must not be valid")
	}
}

func TestCampaignValidate(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	valid := Campaign{
		Slot:      SlotFeed,
		Status:    StatusActive,
		StartDate: now,
		EndDate:   now.AddDate(0, 1, 0),
		Creative:  Creative{DestinationURL: "https://t.me/example"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	broken := []func(c *Campaign){
		func(c *Campaign) { c.Slot = "popup" },
		func(c *Campaign) { c.Status = "paused" },
		func(c *Campaign) { c.EndDate = c.StartDate.Add(-time.Second) },
		func(c *Campaign) { c.FeedTier = ptr(4) },
		func(c *Campaign) { c.TierSlot = ptr(0) },
		func(c *Campaign) { c.Creative.DestinationURL = "" },
	}
	for i, mutate := range broken {
		c := valid
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidCampaign) {
			t.Fatalf("case %d: expected ErrInvalidCampaign, got %v", i, err)
		}
	}
}
