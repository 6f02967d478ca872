package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func intPtr(v int) *int { return &v }

func liveCampaign(slot domain.Slot, age time.Duration) domain.Campaign {
	return domain.Campaign{
		ID:           uuid.New(),
		AdvertiserID: uuid.New(),
		Slot:         slot,
		Status:       domain.StatusActive,
		StartDate:    fixedNow.AddDate(0, 0, -3),
		EndDate:      fixedNow.AddDate(0, 0, 3),
		CreatedAt:    fixedNow.Add(-age),
		Creative: domain.Creative{
			DestinationURL: "https://t.me/" + slot.String(),
			Description:    "Join now",
			ButtonText:     "Open",
		},
	}
}
