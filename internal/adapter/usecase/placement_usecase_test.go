package usecase

import (
	"context"
	"errors"
	"slices"
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

func newPlacement(repo port.CampaignRepository) *PlacementUseCase {
	u := NewPlacementUseCase(repo, discardLogger())
	u.now = clock(fixedNow)
	return u
}

// rawStore returns every fixture of the queried slot, newest first,
// ignoring the live filter and the limit. Eligibility is left entirely to
// the resolver.
func rawStore(fixtures []domain.Campaign) func(context.Context, port.LiveQuery) ([]domain.Campaign, error) {
	return func(_ context.Context, q port.LiveQuery) ([]domain.Campaign, error) {
		var out []domain.Campaign
		for _, c := range fixtures {
			if c.Slot == q.Slot {
				out = append(out, c)
			}
		}
		slices.SortFunc(out, func(a, b domain.Campaign) int { return b.CreatedAt.Compare(a.CreatedAt) })
		return out, nil
	}
}

func TestSingleSlotReturnsOnlyEligible(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	eligible := liveCampaign(domain.SlotNavbarCTA, 2*time.Hour)
	ended := liveCampaign(domain.SlotNavbarCTA, time.Hour)
	ended.Status = domain.StatusEnded

	repo.EXPECT().
		FindLive(mock.Anything, mock.MatchedBy(func(q port.LiveQuery) bool {
			return q.Slot == domain.SlotNavbarCTA && q.Limit == 1 &&
				q.DayStart.Equal(domain.StartOfDay(fixedNow))
		})).
		RunAndReturn(rawStore([]domain.Campaign{eligible, ended}))

	got := newPlacement(repo).GetSingleSlotCampaign(context.Background(), "navbar-cta")
	require.NotNil(t, got)
	assert.Equal(t, eligible.ID, got.ID)
	assert.Equal(t, eligible.Creative.DestinationURL, got.DestinationURL)
	assert.Equal(t, "Open", got.ButtonText)
}

func TestSingleSlotEndDateBoundary(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	yesterday := liveCampaign(domain.SlotJoinCTA, time.Hour)
	yesterday.EndDate = time.Date(2026, 6, 14, 23, 59, 0, 0, time.UTC)
	today := liveCampaign(domain.SlotJoinCTA, 2*time.Hour)
	today.EndDate = time.Date(2026, 6, 15, 0, 1, 0, 0, time.UTC)

	repo.EXPECT().FindLive(mock.Anything, mock.Anything).
		RunAndReturn(rawStore([]domain.Campaign{yesterday, today}))

	got := newPlacement(repo).GetSingleSlotCampaign(context.Background(), "join-cta")
	require.NotNil(t, got)
	assert.Equal(t, today.ID, got.ID)
}

func TestSingleSlotRejectsNonCTASlots(t *testing.T) {
	// no expectations: any store access fails the test
	repo := mocks.NewMockCampaignRepository(t)
	u := newPlacement(repo)

	assert.Nil(t, u.GetSingleSlotCampaign(context.Background(), "feed"))
	assert.Nil(t, u.GetSingleSlotCampaign(context.Background(), "does-not-exist"))
}

func TestPlacementFailsOpen(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindLive(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	repo.EXPECT().AddImpressions(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	u := newPlacement(repo)
	ctx := context.Background()
	assert.Nil(t, u.GetSingleSlotCampaign(ctx, "navbar-cta"))
	assert.Empty(t, u.GetBannerCampaigns(ctx, "top-banner"))
	assert.Equal(t, port.FeedPreview{}, u.GetFeedPreview(ctx))
	assert.Empty(t, u.GetFeed(ctx, "feed"))
	u.RecordImpressions(ctx, []uuid.UUID{uuid.New()})
}

func TestBannerCampaignsLimitedToTwo(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	var fixtures []domain.Campaign
	for i := 1; i <= 3; i++ {
		c := liveCampaign(domain.SlotTopBanner, time.Duration(i)*time.Hour)
		c.Creative.ImageURL = "https://cdn.example/banner.png"
		fixtures = append(fixtures, c)
	}
	videoOnly := liveCampaign(domain.SlotTopBanner, time.Minute)
	videoOnly.Creative.VideoURL = "https://cdn.example/banner.mp4"
	fixtures = append(fixtures, videoOnly)

	repo.EXPECT().FindLive(mock.Anything, mock.MatchedBy(func(q port.LiveQuery) bool { return q.Limit == 2 })).
		RunAndReturn(rawStore(fixtures))

	got := newPlacement(repo).GetBannerCampaigns(context.Background(), "top-banner")
	require.Len(t, got, 2)
	assert.Equal(t, videoOnly.ID, got[0].ID)
	assert.Equal(t, "https://cdn.example/banner.mp4", got[0].CreativeURL)
	assert.Equal(t, fixtures[0].ID, got[1].ID)

	assert.Empty(t, newPlacement(mocks.NewMockCampaignRepository(t)).GetBannerCampaigns(context.Background(), "navbar-cta"))
}

func TestFeedPreviewSplitsVideoAndImage(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	newestImage := liveCampaign(domain.SlotFeed, time.Hour)
	newestImage.Creative.ImageURL = "https://cdn.example/a.png"
	olderImage := liveCampaign(domain.SlotFeed, 2*time.Hour)
	olderImage.Creative.ImageURL = "https://cdn.example/b.png"
	video := liveCampaign(domain.SlotFeed, 3*time.Hour)
	video.Creative.VideoURL = "https://cdn.example/c.mp4"
	video.Creative.ImageURL = "https://cdn.example/c-poster.png"

	repo.EXPECT().FindLive(mock.Anything, mock.Anything).
		RunAndReturn(rawStore([]domain.Campaign{olderImage, video, newestImage}))

	got := newPlacement(repo).GetFeedPreview(context.Background())
	require.NotNil(t, got.Video)
	require.NotNil(t, got.Image)
	assert.Equal(t, video.ID, got.Video.ID)
	assert.Equal(t, newestImage.ID, got.Image.ID)
}

func TestFeedOrderedByTier(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	a := liveCampaign(domain.SlotFeed, time.Hour)
	a.FeedTier, a.TierSlot = intPtr(2), intPtr(1)
	b := liveCampaign(domain.SlotFeed, 2*time.Hour)
	b.FeedTier, b.TierSlot = intPtr(1), intPtr(3)
	c := liveCampaign(domain.SlotFeed, 3*time.Hour)
	c.FeedTier, c.TierSlot = intPtr(1), intPtr(1)
	untiered := liveCampaign(domain.SlotFeed, 4*time.Hour)

	repo.EXPECT().FindLive(mock.Anything, mock.Anything).
		RunAndReturn(rawStore([]domain.Campaign{a, b, c, untiered}))

	got := newPlacement(repo).GetFeed(context.Background(), "feed")
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{c.ID, b.ID, a.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestFeedSkipsHiddenAndNotStarted(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	hidden := liveCampaign(domain.SlotSidebarFeed, time.Hour)
	hidden.IsVisible = new(bool)
	hidden.FeedTier, hidden.TierSlot = intPtr(1), intPtr(1)
	future := liveCampaign(domain.SlotSidebarFeed, 2*time.Hour)
	future.StartDate = fixedNow.Add(time.Minute)
	future.FeedTier, future.TierSlot = intPtr(1), intPtr(2)
	shown := liveCampaign(domain.SlotSidebarFeed, 3*time.Hour)
	shown.IsVisible = func(b bool) *bool { return &b }(true)
	shown.FeedTier, shown.TierSlot = intPtr(2), intPtr(1)

	repo.EXPECT().FindLive(mock.Anything, mock.Anything).
		RunAndReturn(rawStore([]domain.Campaign{hidden, future, shown}))

	got := newPlacement(repo).GetFeed(context.Background(), "sidebar-feed")
	require.Len(t, got, 1)
	assert.Equal(t, shown.ID, got[0].ID)
}

func TestRecordImpressionsSkipsEmpty(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	newPlacement(repo).RecordImpressions(context.Background(), nil)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	repo.EXPECT().AddImpressions(mock.Anything, ids).Return(nil).Once()
	newPlacement(repo).RecordImpressions(context.Background(), ids)
}
