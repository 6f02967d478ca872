package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/metrics"
)

// ClickUseCase records clicks on placed campaigns. It implements
// port.ClickUseCase.
type ClickUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewClickUseCase creates a click tracker backed by repo.
func NewClickUseCase(repo port.CampaignRepository, logger *slog.Logger) *ClickUseCase {
	return &ClickUseCase{repo: repo, logger: logger, now: time.Now}
}

// TrackClick increments the click counter of the campaign and appends a
// click event. Repeated calls are not de-duplicated.
func (u *ClickUseCase) TrackClick(ctx context.Context, campaignID uuid.UUID, placement string) error {
	if campaignID == uuid.Nil {
		return port.ErrMissingCampaignID
	}
	click := &domain.Click{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Placement:  placement,
		CreatedAt:  u.now().UTC(),
	}
	err := u.repo.RecordClick(ctx, click)
	metrics.RecordClick(placement, err)
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// RegisterClick looks up the campaign's destination, tracks the click and
// returns the destination. A failure to record the click is logged and
// does not prevent the redirect.
func (u *ClickUseCase) RegisterClick(ctx context.Context, campaignID uuid.UUID, placement string) (string, error) {
	if campaignID == uuid.Nil {
		return "", port.ErrMissingCampaignID
	}
	camp, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if camp == nil {
		return "", port.ErrCampaignNotFound
	}
	if err = u.TrackClick(ctx, campaignID, placement); err != nil {
		u.logger.Warn("click not recorded",
			slog.String("campaign_id", campaignID.String()),
			slog.Any("error", err))
	}
	return camp.Creative.DestinationURL, nil
}
