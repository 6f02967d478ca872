package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/core/port/mocks"
)

func newClicks(repo port.CampaignRepository) *ClickUseCase {
	u := NewClickUseCase(repo, discardLogger())
	u.now = clock(fixedNow)
	return u
}

// TestTrackClickIsMonotonic ensures N concurrent clicks add exactly N to
// the counter and append N events.
func TestTrackClickIsMonotonic(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()

	var (
		mu     sync.Mutex
		clicks int64
		events []domain.Click
	)
	repo.EXPECT().
		RecordClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(ctx context.Context, click *domain.Click) {
			mu.Lock()
			defer mu.Unlock()
			clicks++
			events = append(events, *click)
		}).
		Return(nil)

	svc := newClicks(repo)
	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.TrackClick(context.Background(), id, "feed"))
		}()
	}
	wg.Wait()

	assert.EqualValues(t, n, clicks)
	require.Len(t, events, n)
	seen := make(map[uuid.UUID]struct{}, n)
	for _, e := range events {
		assert.Equal(t, id, e.CampaignID)
		assert.Equal(t, "feed", e.Placement)
		assert.Equal(t, fixedNow, e.CreatedAt)
		seen[e.ID] = struct{}{}
	}
	assert.Len(t, seen, n, "every click event gets its own id")
}

func TestTrackClickWithoutCampaignIsRejected(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	err := newClicks(repo).TrackClick(context.Background(), uuid.Nil, "")
	assert.ErrorIs(t, err, port.ErrMissingCampaignID)
}

func TestTrackClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().RecordClick(mock.Anything, mock.Anything).Return(port.ErrCampaignNotFound)

	err := newClicks(repo).TrackClick(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestRegisterClickRedirectsEvenIfRecordingFails(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camp := liveCampaign(domain.SlotTopBanner, time.Hour)

	repo.EXPECT().GetCampaign(mock.Anything, camp.ID).Return(&camp, nil)
	repo.EXPECT().RecordClick(mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

	url, err := newClicks(repo).RegisterClick(context.Background(), camp.ID, "top-banner")
	require.NoError(t, err)
	assert.Equal(t, camp.Creative.DestinationURL, url)
}

func TestRegisterClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	_, err := newClicks(repo).RegisterClick(context.Background(), id, "")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}
