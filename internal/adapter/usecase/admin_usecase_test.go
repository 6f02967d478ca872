package usecase

import (
	"context"
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

func newAdmin(campaigns port.CampaignRepository, advertisers port.AdvertiserRepository) *AdminUseCase {
	u := NewAdminUseCase(campaigns, advertisers)
	u.now = clock(fixedNow)
	return u
}

func TestCreateCampaignDefaults(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c := &domain.Campaign{
		Slot:      domain.SlotNavbarCTA,
		StartDate: fixedNow,
		EndDate:   fixedNow.AddDate(0, 1, 0),
		Creative:  domain.Creative{DestinationURL: "https://t.me/x"},
	}
	require.NoError(t, newAdmin(repo, nil).CreateCampaign(context.Background(), c))
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, fixedNow, c.CreatedAt)
}

func TestCreateCampaignRejectsInvertedDates(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := &domain.Campaign{
		Slot:      domain.SlotFeed,
		StartDate: fixedNow,
		EndDate:   fixedNow.Add(-time.Hour),
		Creative:  domain.Creative{DestinationURL: "https://t.me/x"},
	}
	err := newAdmin(repo, nil).CreateCampaign(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrInvalidCampaign)
}

func TestUpdateCampaignAppliesPatch(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := liveCampaign(domain.SlotFeed, time.Hour)
	repo.EXPECT().GetCampaign(mock.Anything, stored.ID).Return(&stored, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, mock.Anything).Return(nil)

	hidden := false
	ended := domain.StatusEnded
	got, err := newAdmin(repo, nil).UpdateCampaign(context.Background(), stored.ID, port.CampaignPatch{
		IsVisible: &hidden,
		Status:    &ended,
	})
	require.NoError(t, err)
	assert.False(t, got.Visible())
	assert.Equal(t, domain.StatusEnded, got.Status)
	assert.Equal(t, "Join now", got.Creative.Description, "untouched fields are kept")
}

func TestUpdateCampaignClearsNullableFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := liveCampaign(domain.SlotFeed, time.Hour)
	hidden := false
	stored.IsVisible = &hidden
	stored.Position, stored.FeedTier, stored.TierSlot = intPtr(3), intPtr(1), intPtr(3)
	repo.EXPECT().GetCampaign(mock.Anything, stored.ID).Return(&stored, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, mock.Anything).Return(nil)

	got, err := newAdmin(repo, nil).UpdateCampaign(context.Background(), stored.ID, port.CampaignPatch{
		ClearIsVisible: true,
		ClearFeedTier:  true,
		ClearTierSlot:  true,
		ClearPosition:  true,
	})
	require.NoError(t, err)
	assert.Nil(t, got.IsVisible)
	assert.Nil(t, got.FeedTier)
	assert.Nil(t, got.TierSlot)
	assert.Nil(t, got.Position)
}

func TestUpdateCampaignLeavingFeedDropsTier(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := liveCampaign(domain.SlotFeed, time.Hour)
	stored.Position, stored.FeedTier, stored.TierSlot = intPtr(2), intPtr(1), intPtr(2)
	repo.EXPECT().GetCampaign(mock.Anything, stored.ID).Return(&stored, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, mock.Anything).Return(nil)

	banner := domain.SlotTopBanner
	got, err := newAdmin(repo, nil).UpdateCampaign(context.Background(), stored.ID, port.CampaignPatch{Slot: &banner})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotTopBanner, got.Slot)
	assert.Nil(t, got.FeedTier)
	assert.Nil(t, got.TierSlot)
	assert.Equal(t, intPtr(2), got.Position)
}

func TestUpdateMissingCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	_, err := newAdmin(repo, nil).UpdateCampaign(context.Background(), id, port.CampaignPatch{})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestCampaignStatsWindows(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := liveCampaign(domain.SlotFeed, time.Hour)
	c.Clicks, c.Impressions = 90, 1000
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(&c, nil)
	repo.EXPECT().CountClicks(mock.Anything, c.ID, fixedNow.Add(-24*time.Hour)).Return(3, nil)
	repo.EXPECT().CountClicks(mock.Anything, c.ID, fixedNow.AddDate(0, 0, -7)).Return(20, nil)
	repo.EXPECT().CountClicks(mock.Anything, c.ID, fixedNow.AddDate(0, 0, -30)).Return(75, nil)

	stats, err := newAdmin(repo, nil).CampaignStats(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, &port.CampaignStats{
		CampaignID:  c.ID,
		Clicks24h:   3,
		Clicks7d:    20,
		Clicks30d:   75,
		Clicks:      90,
		Impressions: 1000,
	}, stats)
}

func TestDeactivateAdvertiserKeepsCampaigns(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	advertisers := mocks.NewMockAdvertiserRepository(t)
	id := uuid.New()
	advertisers.EXPECT().SetAdvertiserActive(mock.Anything, id, false).Return(nil)

	require.NoError(t, newAdmin(campaigns, advertisers).DeactivateAdvertiser(context.Background(), id))
}

func TestCreateAdvertiser(t *testing.T) {
	advertisers := mocks.NewMockAdvertiserRepository(t)
	advertisers.EXPECT().CreateAdvertiser(mock.Anything, mock.MatchedBy(func(a *domain.Advertiser) bool {
		return a.Name == "Acme" && a.Active
	})).Return(nil)

	a, err := newAdmin(nil, advertisers).CreateAdvertiser(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", a.Name)
}
