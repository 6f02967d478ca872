package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	advA = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	advB = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
)

func feedCampaign(adv uuid.UUID, n int, clicks int64, now time.Time) Campaign {
	return Campaign{
		ID:           uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n)),
		AdvertiserID: adv,
		Slot:         SlotFeed,
		Status:       StatusActive,
		StartDate:    now.AddDate(0, 0, -1),
		EndDate:      now.AddDate(0, 0, 30),
		Clicks:       clicks,
		CreatedAt:    now.Add(-time.Duration(n) * time.Hour),
	}
}

func TestFeedPlanApply(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var all []Campaign
	n := 0
	// six campaigns for A, six for B, three for others
	for i := 0; i < 6; i++ {
		n++
		all = append(all, feedCampaign(advA, n, int64(100-i), now))
	}
	for i := 0; i < 6; i++ {
		n++
		all = append(all, feedCampaign(advB, n, int64(90-i), now))
	}
	other := uuid.New()
	for i := 0; i < 3; i++ {
		n++
		all = append(all, feedCampaign(other, n, int64(1000+i), now))
	}

	out := FeedPlan(advA, advB).Apply(all, now)
	require.Len(t, out.Assigned, 12)
	require.Len(t, out.Archived, 3)

	byID := make(map[uuid.UUID]Campaign)
	for _, c := range all {
		byID[c.ID] = c
	}
	perTier := map[int]int{}
	for i, a := range out.Assigned {
		perTier[a.Tier]++
		assert.Equal(t, i+1, a.Position)
		c := byID[a.CampaignID]
		switch a.Tier {
		case 1:
			assert.Equal(t, advA, c.AdvertiserID)
		case 2:
			assert.Equal(t, advB, c.AdvertiserID)
		}
	}
	for tier, count := range perTier {
		assert.LessOrEqual(t, count, 4, "tier %d", tier)
	}

	// Tier 3 is led by the others (highest clicks) and completed by A's overflow.
	tier3 := out.Assigned[8:]
	assert.Equal(t, other, byID[tier3[0].CampaignID].AdvertiserID)
	assert.Equal(t, int64(1002), byID[tier3[0].CampaignID].Clicks)
	assert.Equal(t, advA, byID[tier3[3].CampaignID].AdvertiserID)
	assert.Equal(t, 4, tier3[3].TierSlot)
}

func TestPlanApplyIsIdempotent(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var all []Campaign
	for i := 1; i <= 10; i++ {
		adv := advA
		if i%2 == 0 {
			adv = advB
		}
		// equal clicks force the tie-break path
		all = append(all, feedCampaign(adv, i, 5, now))
	}
	plan := FeedPlan(advA, advB)
	first := plan.Apply(all, now)

	reversed := make([]Campaign, len(all))
	for i, c := range all {
		reversed[len(all)-1-i] = c
	}
	second := plan.Apply(reversed, now)
	assert.Equal(t, first, second)
}

func TestPlanApplyIgnoresIneligible(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expired := feedCampaign(advA, 1, 50, now)
	expired.EndDate = now.AddDate(0, 0, -2)
	sidebar := feedCampaign(advA, 2, 50, now)
	sidebar.Slot = SlotSidebarFeed
	live := feedCampaign(advA, 3, 1, now)

	out := FeedPlan(advA, advB).Apply([]Campaign{expired, sidebar, live}, now)
	require.Len(t, out.Assigned, 1)
	assert.Equal(t, live.ID, out.Assigned[0].CampaignID)
	assert.Empty(t, out.Archived)
}

func TestSidebarPlanArchivesTheRest(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	var all []Campaign
	for i := 1; i <= 4; i++ {
		c := feedCampaign(advA, i, int64(i), now)
		c.Slot = SlotSidebarFeed
		all = append(all, c)
	}
	for i := 5; i <= 6; i++ {
		c := feedCampaign(advB, i, int64(i), now)
		c.Slot = SlotSidebarFeed
		all = append(all, c)
	}
	stranger := feedCampaign(uuid.New(), 7, 999, now)
	stranger.Slot = SlotSidebarFeed
	all = append(all, stranger)

	out := SidebarPlan(advA, advB).Apply(all, now)
	require.Len(t, out.Assigned, 4)
	assert.Len(t, out.Archived, 3)
	assert.Contains(t, out.Archived, stranger.ID)
	// highest clicks for A first
	assert.Equal(t, all[3].ID, out.Assigned[0].CampaignID)
}

func TestPlanWithUnsetAdvertiserLeavesCampaignsAlone(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := feedCampaign(advA, 1, 10, now)
	c.Slot = SlotSidebarFeed

	plan := SidebarPlan(uuid.Nil, uuid.Nil)
	assert.ErrorIs(t, plan.Validate(), ErrUnconfiguredPlan)
	out := plan.Apply([]Campaign{c}, now)
	assert.Empty(t, out.Assigned)
	assert.Empty(t, out.Archived)

	assert.ErrorIs(t, FeedPlan(advA, uuid.Nil).Validate(), ErrUnconfiguredPlan)
	assert.NoError(t, FeedPlan(advA, advB).Validate())
}
