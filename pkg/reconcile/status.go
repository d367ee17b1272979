package reconcile

import "github.com/lathercraft/lathermap/pkg/gear"

// componentState is the tri-state outcome of one component attempt, plus
// the filtered case for completeness of the aggregate table.
type componentState int

const (
	stateAbsent componentState = iota // component not attempted
	stateMatched
	stateUnmatched
	stateFiltered
)

// status converts a component state to its record-level status. Absent
// components never reach this; they are omitted from the output instead.
func (s componentState) status() gear.MatchStatus {
	switch s {
	case stateMatched:
		return gear.StatusMatched
	case stateFiltered:
		return gear.StatusFiltered
	default:
		return gear.StatusUnmatched
	}
}

// aggregateTable is the full (handle, knot) -> verdict precedence table.
// It is spelled out pair by pair so the precedence rules stay auditable:
//
//   - any filtered component filters the record
//   - a single attempted component passes its status through
//   - both matched is the only combination that confirms a match;
//     a mixed matched/unmatched pair is conservatively unmatched
//   - nothing attempted confirms nothing
var aggregateTable = map[[2]componentState]gear.MatchStatus{
	{stateAbsent, stateAbsent}:       gear.StatusUnmatched,
	{stateAbsent, stateMatched}:      gear.StatusMatched,
	{stateAbsent, stateUnmatched}:    gear.StatusUnmatched,
	{stateAbsent, stateFiltered}:     gear.StatusFiltered,
	{stateMatched, stateAbsent}:      gear.StatusMatched,
	{stateMatched, stateMatched}:     gear.StatusMatched,
	{stateMatched, stateUnmatched}:   gear.StatusUnmatched,
	{stateMatched, stateFiltered}:    gear.StatusFiltered,
	{stateUnmatched, stateAbsent}:    gear.StatusUnmatched,
	{stateUnmatched, stateMatched}:   gear.StatusUnmatched,
	{stateUnmatched, stateUnmatched}: gear.StatusUnmatched,
	{stateUnmatched, stateFiltered}:  gear.StatusFiltered,
	{stateFiltered, stateAbsent}:     gear.StatusFiltered,
	{stateFiltered, stateMatched}:    gear.StatusFiltered,
	{stateFiltered, stateUnmatched}:  gear.StatusFiltered,
	{stateFiltered, stateFiltered}:   gear.StatusFiltered,
}

// aggregate derives the record verdict. A filtered raw kind outranks all
// component data; everything else is a table lookup.
func aggregate(filtered bool, handle, knot componentState) gear.MatchStatus {
	if filtered {
		return gear.StatusFiltered
	}
	return aggregateTable[[2]componentState{handle, knot}]
}
