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

var (
	primaryAdv   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	secondaryAdv = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// memoryStore keeps campaigns in memory and wires them into a mocked
// repository so tier runs can be observed end to end.
type memoryStore struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]*domain.Campaign
}

func newMemoryStore(t *testing.T, camps []domain.Campaign) (*memoryStore, *mocks.MockCampaignRepository) {
	s := &memoryStore{campaigns: make(map[uuid.UUID]*domain.Campaign)}
	for i := range camps {
		c := camps[i]
		s.campaigns[c.ID] = &c
	}
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindTierCandidates(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, slot domain.Slot) ([]domain.Campaign, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []domain.Campaign
			for _, c := range s.campaigns {
				if c.Slot == slot && c.Status == domain.StatusActive {
					out = append(out, *c)
				}
			}
			return out, nil
		}).Maybe()
	repo.EXPECT().AssignTier(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a domain.Assignment) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			c := s.campaigns[a.CampaignID]
			c.FeedTier, c.TierSlot, c.Position = intPtr(a.Tier), intPtr(a.TierSlot), intPtr(a.Position)
			return nil
		}).Maybe()
	repo.EXPECT().Archive(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			c := s.campaigns[id]
			c.Status = domain.StatusEnded
			c.FeedTier, c.TierSlot, c.Position = nil, nil, nil
			return nil
		}).Maybe()
	return s, repo
}

type placementKey struct {
	status         domain.Status
	tier, tierSlot int
}

func (s *memoryStore) snapshot() map[uuid.UUID]placementKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]placementKey, len(s.campaigns))
	for id, c := range s.campaigns {
		k := placementKey{status: c.Status}
		if c.FeedTier != nil {
			k.tier, k.tierSlot = *c.FeedTier, *c.TierSlot
		}
		out[id] = k
	}
	return out
}

func tierFixtures() []domain.Campaign {
	var camps []domain.Campaign
	add := func(slot domain.Slot, adv uuid.UUID, n int, clicks int64) {
		for i := 0; i < n; i++ {
			c := liveCampaign(slot, time.Duration(len(camps))*time.Minute)
			c.AdvertiserID = adv
			c.Clicks = clicks - int64(i)
			camps = append(camps, c)
		}
	}
	add(domain.SlotFeed, primaryAdv, 6, 500)
	add(domain.SlotFeed, secondaryAdv, 5, 400)
	add(domain.SlotFeed, uuid.New(), 3, 300)
	add(domain.SlotSidebarFeed, primaryAdv, 3, 50)
	add(domain.SlotSidebarFeed, secondaryAdv, 3, 40)
	return camps
}

func newAssigner(repo port.CampaignRepository, locker port.Locker) *TierAssigner {
	u := NewTierAssigner(repo, locker, time.Minute, discardLogger(),
		domain.FeedPlan(primaryAdv, secondaryAdv),
		domain.SidebarPlan(primaryAdv, secondaryAdv))
	u.now = clock(fixedNow)
	return u
}

func TestTierRunAssignsAndArchives(t *testing.T) {
	store, repo := newMemoryStore(t, tierFixtures())

	report, err := newAssigner(repo, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &port.SlotReport{Assigned: 12, Archived: 2}, report.Slots[domain.SlotFeed])
	assert.Equal(t, &port.SlotReport{Assigned: 4, Archived: 2}, report.Slots[domain.SlotSidebarFeed])

	perTier := map[domain.Slot]map[int]int{}
	for _, c := range store.campaigns {
		if c.FeedTier == nil {
			continue
		}
		if perTier[c.Slot] == nil {
			perTier[c.Slot] = map[int]int{}
		}
		perTier[c.Slot][*c.FeedTier]++
		switch {
		case *c.FeedTier == 1:
			assert.Equal(t, primaryAdv, c.AdvertiserID)
		case *c.FeedTier == 2:
			assert.Equal(t, secondaryAdv, c.AdvertiserID)
		}
	}
	for slot, tiers := range perTier {
		for tier, n := range tiers {
			assert.LessOrEqual(t, n, 4, "%s tier %d", slot, tier)
		}
	}
}

func TestTierRunIsIdempotent(t *testing.T) {
	store, repo := newMemoryStore(t, tierFixtures())
	svc := newAssigner(repo, nil)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	first := store.snapshot()

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, store.snapshot())
	assert.Zero(t, report.Slots[domain.SlotFeed].Archived, "nothing left to archive on the second run")
}

func TestTierRunContinuesAfterWriteFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	camps := tierFixtures()[:6] // primary feed campaigns only

	repo.EXPECT().FindTierCandidates(mock.Anything, domain.SlotFeed).Return(camps, nil)
	repo.EXPECT().FindTierCandidates(mock.Anything, domain.SlotSidebarFeed).Return(nil, nil)
	repo.EXPECT().AssignTier(mock.Anything, mock.MatchedBy(func(a domain.Assignment) bool { return a.TierSlot == 2 })).
		Return(errors.New("write conflict")).Once()
	repo.EXPECT().AssignTier(mock.Anything, mock.Anything).Return(nil)

	report, err := newAssigner(repo, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &port.SlotReport{Assigned: 5, Archived: 0, Failed: 1}, report.Slots[domain.SlotFeed])
}

func TestTierRunCandidateFailureLeavesOtherPlansRunning(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	sidebar := tierFixtures()[14:]
	feedFailed := make(chan struct{})

	repo.EXPECT().FindTierCandidates(mock.Anything, domain.SlotFeed).
		RunAndReturn(func(context.Context, domain.Slot) ([]domain.Campaign, error) {
			defer close(feedFailed)
			return nil, errors.New("feed query timeout")
		})
	repo.EXPECT().FindTierCandidates(mock.Anything, domain.SlotSidebarFeed).
		RunAndReturn(func(ctx context.Context, _ domain.Slot) ([]domain.Campaign, error) {
			<-feedFailed
			time.Sleep(20 * time.Millisecond)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return sidebar, nil
		})
	repo.EXPECT().AssignTier(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().Archive(mock.Anything, mock.Anything).Return(nil)

	report, err := newAssigner(repo, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed query timeout")
	require.NotNil(t, report)
	assert.Nil(t, report.Slots[domain.SlotFeed])
	assert.Equal(t, &port.SlotReport{Assigned: 4, Archived: 2}, report.Slots[domain.SlotSidebarFeed])
}

func TestTierRunWithUnsetAdvertiserEndsNothing(t *testing.T) {
	// no expectations: any store access fails the test
	repo := mocks.NewMockCampaignRepository(t)
	u := NewTierAssigner(repo, nil, time.Minute, discardLogger(),
		domain.FeedPlan(uuid.Nil, uuid.Nil),
		domain.SidebarPlan(uuid.Nil, uuid.Nil))
	u.now = clock(fixedNow)

	report, err := u.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnconfiguredPlan)
	require.NotNil(t, report)
	assert.Empty(t, report.Slots)
}

func TestTierRunHoldsLock(t *testing.T) {
	_, repo := newMemoryStore(t, tierFixtures())
	locker := mocks.NewMockLocker(t)

	released := false
	locker.EXPECT().Acquire(mock.Anything, tierLockKey, time.Minute).
		Return(func(context.Context) error { released = true; return nil }, nil)

	_, err := newAssigner(repo, locker).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, released)
}

func TestTierRunRefusesWhenLocked(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, tierLockKey, time.Minute).Return(nil, port.ErrAssignmentRunning)

	report, err := newAssigner(repo, locker).Run(context.Background())
	assert.ErrorIs(t, err, port.ErrAssignmentRunning)
	assert.Nil(t, report)
}
