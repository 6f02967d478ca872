package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TierRule fills one tier. A rule either takes campaigns of a single
// advertiser or, when Remainder is set, campaigns of anyone not already
// selected by an earlier rule.
type TierRule struct {
	Tier       int
	Advertiser uuid.UUID
	Remainder  bool
	Size       int
}

// TierPlan is the ordered set of rules applied to one slot.
type TierPlan struct {
	Slot  Slot
	Rules []TierRule
}

// ErrUnconfiguredPlan is returned for a plan whose advertiser rule names
// no advertiser.
var ErrUnconfiguredPlan = errors.New("tier plan has no advertiser")

// Validate reports whether every advertiser rule names an advertiser.
func (p TierPlan) Validate() error {
	for _, rule := range p.Rules {
		if !rule.Remainder && rule.Advertiser == uuid.Nil {
			return fmt.Errorf("%w: %s tier %d", ErrUnconfiguredPlan, p.Slot, rule.Tier)
		}
	}
	return nil
}

// FeedPlan returns the plan for the main feed: four positions for each of
// the two named advertisers followed by four positions for everyone else.
func FeedPlan(primary, secondary uuid.UUID) TierPlan {
	return TierPlan{
		Slot: SlotFeed,
		Rules: []TierRule{
			{Tier: 1, Advertiser: primary, Size: 4},
			{Tier: 2, Advertiser: secondary, Size: 4},
			{Tier: 3, Remainder: true, Size: 4},
		},
	}
}

// SidebarPlan returns the plan for the sidebar feed, two positions for each
// named advertiser.
func SidebarPlan(primary, secondary uuid.UUID) TierPlan {
	return TierPlan{
		Slot: SlotSidebarFeed,
		Rules: []TierRule{
			{Tier: 1, Advertiser: primary, Size: 2},
			{Tier: 2, Advertiser: secondary, Size: 2},
		},
	}
}

// Assignment places a campaign at a tier position.
type Assignment struct {
	CampaignID uuid.UUID
	Tier       int
	TierSlot   int
	Position   int
}

// TierOutcome is the result of applying a plan.
type TierOutcome struct {
	Assigned []Assignment
	Archived []uuid.UUID
}

// Apply ranks the active in-window campaigns of the plan's slot by clicks
// and fills the tiers in rule order. Candidates that are not selected are
// returned in Archived. Campaigns outside their date window, of another
// slot or not active are ignored entirely.
//
// Ties are broken by creation time (newest first) and then id so that
// repeated runs over the same data produce the same outcome. A plan that
// fails Validate selects and archives nothing.
func (p TierPlan) Apply(campaigns []Campaign, now time.Time) TierOutcome {
	if p.Validate() != nil {
		return TierOutcome{}
	}
	ranked := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Slot == p.Slot && c.Status == StatusActive && c.InWindow(now) {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, compareByClicks)

	var (
		out      TierOutcome
		selected = make(map[uuid.UUID]struct{}, len(ranked))
		position = 0
	)
	for _, rule := range p.Rules {
		taken := 0
		for _, c := range ranked {
			if taken == rule.Size {
				break
			}
			if _, ok := selected[c.ID]; ok {
				continue
			}
			if !rule.Remainder && c.AdvertiserID != rule.Advertiser {
				continue
			}
			selected[c.ID] = struct{}{}
			taken++
			position++
			out.Assigned = append(out.Assigned, Assignment{
				CampaignID: c.ID,
				Tier:       rule.Tier,
				TierSlot:   taken,
				Position:   position,
			})
		}
	}
	for _, c := range ranked {
		if _, ok := selected[c.ID]; !ok {
			out.Archived = append(out.Archived, c.ID)
		}
	}
	return out
}

func compareByClicks(a, b Campaign) int {
	switch {
	case a.Clicks != b.Clicks:
		if a.Clicks > b.Clicks {
			return -1
		}
		return 1
	case !a.CreatedAt.Equal(b.CreatedAt):
		return b.CreatedAt.Compare(a.CreatedAt)
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}
