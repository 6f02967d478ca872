package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erogram-ads/internal/config/configs"
	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port/mocks"
)

func TestTierPlans(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	plans := TierPlans(configs.Tiers{Primary: p, Secondary: s})
	require.Len(t, plans, 2)
	assert.Equal(t, domain.SlotFeed, plans[0].Slot)
	assert.Equal(t, domain.SlotSidebarFeed, plans[1].Slot)
}

func TestNewTierAssignerRejectsSameAdvertiser(t *testing.T) {
	id := uuid.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, _, err := NewTierAssigner(context.Background(), configs.Redis{},
		configs.Tiers{Primary: id, Secondary: id}, mocks.NewMockCampaignRepository(t), logger)
	assert.Error(t, err)
}

func TestNewTierAssignerRequiresAdvertisers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tiers := range []configs.Tiers{
		{},
		{Primary: uuid.New()},
		{Secondary: uuid.New()},
	} {
		_, _, err := NewTierAssigner(context.Background(), configs.Redis{},
			tiers, mocks.NewMockCampaignRepository(t), logger)
		assert.ErrorIs(t, err, ErrTierAdvertisersUnset)
	}
}

func TestNewTierAssignerWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, client, err := NewTierAssigner(context.Background(), configs.Redis{},
		configs.Tiers{Primary: uuid.New(), Secondary: uuid.New()}, mocks.NewMockCampaignRepository(t), logger)
	require.NoError(t, err)
	assert.NotNil(t, a)
	assert.Nil(t, client)
}
