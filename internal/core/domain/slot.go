package domain

// Slot is a named placement location in the UI. The set of slots is fixed.
type Slot string

const (
	SlotFeed        Slot = "feed"
	SlotSidebarFeed Slot = "sidebar-feed"
	SlotTopBanner   Slot = "top-banner"
	SlotNavbarCTA   Slot = "navbar-cta"
	SlotFilterCTA   Slot = "filter-cta"
	SlotJoinCTA     Slot = "join-cta"
)

var slotKinds = map[Slot]slotKind{
	SlotFeed:        kindFeed,
	SlotSidebarFeed: kindFeed,
	SlotTopBanner:   kindBanner,
	SlotNavbarCTA:   kindCTA,
	SlotFilterCTA:   kindCTA,
	SlotJoinCTA:     kindCTA,
}

type slotKind int

const (
	kindUnknown slotKind = iota
	kindFeed
	kindBanner
	kindCTA
)

// Valid reports whether s is one of the recognised slots.
func (s Slot) Valid() bool {
	return slotKinds[s] != kindUnknown
}

// IsCTA reports whether s is a text-only call-to-action slot.
func (s Slot) IsCTA() bool {
	return slotKinds[s] == kindCTA
}

// IsBanner reports whether s is a rotating banner slot.
func (s Slot) IsBanner() bool {
	return slotKinds[s] == kindBanner
}

// IsFeed reports whether s is a tiered feed slot.
func (s Slot) IsFeed() bool {
	return slotKinds[s] == kindFeed
}

func (s Slot) String() string {
	return string(s)
}
