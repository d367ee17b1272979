// Package gear defines the shared vocabulary for wetshaving gear matching:
// component kinds, match statuses, and the curated catalog and alias
// registry types consumed by the resolver and reconciler.
package gear

// ComponentKind identifies a sub-component of a brush for compile-time safety.
type ComponentKind string

// String returns the string representation of a ComponentKind.
func (ck ComponentKind) String() string {
	return string(ck)
}

// Brush component kinds.
const (
	ComponentHandle ComponentKind = "handle"
	ComponentKnot   ComponentKind = "knot"
)

// Components lists the component kinds in display order.
func Components() []ComponentKind {
	return []ComponentKind{ComponentHandle, ComponentKnot}
}

// MatchStatus is the verdict attached to a record or one of its components.
type MatchStatus string

// String returns the string representation of a MatchStatus.
func (ms MatchStatus) String() string {
	return string(ms)
}

// Match statuses. Filtered never appears at the component level; components
// carry it only through the record-wide filter kind.
const (
	StatusMatched   MatchStatus = "matched"
	StatusUnmatched MatchStatus = "unmatched"
	StatusFiltered  MatchStatus = "filtered"
)

// MatchKind is the upstream matcher's classification of a raw result.
// The zero value means the matcher applied no special handling.
type MatchKind string

// String returns the string representation of a MatchKind.
func (mk MatchKind) String() string {
	return string(mk)
}

// KindFiltered marks a result the matcher excluded by rule; it
// short-circuits all status logic downstream.
const KindFiltered MatchKind = "filtered"
