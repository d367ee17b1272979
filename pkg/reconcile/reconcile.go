// Package reconcile collapses raw brush matcher output, whose handle and
// knot sub-matches may individually succeed, fail, or be absent, into one
// coherent record with per-component statuses and a single aggregate
// verdict. Reconciliation is a pure function: no I/O, no shared state, and
// it never panics however malformed the input is.
package reconcile

import (
	"strings"

	"github.com/lathercraft/lathermap/pkg/gear"
)

// Placeholder display text for components with no usable text at all.
const (
	unknownHandle = "unknown handle"
	unknownKnot   = "unknown knot"
)

// Reconcile turns a raw matcher result into a Record. A nil raw is a
// defined fallback, not an error: it yields an empty unmatched record with
// no components. Components that were never attempted are omitted from the
// output rather than reported as unmatched.
func Reconcile(raw *RawMatch) Record {
	rec := Record{
		Main: Main{
			EvidenceIDs: []string{},
			Examples:    []string{},
			Status:      gear.StatusUnmatched,
		},
	}
	if raw == nil {
		return rec
	}

	rec.Main.Text = raw.Item
	if raw.Count > 0 {
		rec.Main.Count = raw.Count
	}
	if raw.EvidenceIDs != nil {
		rec.Main.EvidenceIDs = append(rec.Main.EvidenceIDs, raw.EvidenceIDs...)
	}
	if raw.Examples != nil {
		rec.Main.Examples = append(rec.Main.Examples, raw.Examples...)
	}

	filtered := raw.Kind == gear.KindFiltered

	states := make(map[gear.ComponentKind]componentState, 2)
	for _, kind := range gear.Components() {
		state, comp := reconcileComponent(raw, kind, filtered)
		states[kind] = state
		if state == stateAbsent {
			continue
		}
		if rec.Components == nil {
			rec.Components = make(map[gear.ComponentKind]ComponentRecord, 2)
		}
		rec.Components[kind] = comp
	}

	rec.Main.Status = aggregate(filtered, states[gear.ComponentHandle], states[gear.ComponentKnot])
	return rec
}

// reconcileComponent resolves one component's state and record. The state
// drives the aggregate table; the record is only meaningful when the state
// is not absent.
func reconcileComponent(raw *RawMatch, kind gear.ComponentKind, filtered bool) (componentState, ComponentRecord) {
	match := raw.componentMatch(kind)
	miss := raw.componentMiss(kind)

	if match == nil && miss == nil {
		return stateAbsent, ComponentRecord{}
	}

	// A record-wide filter verdict outranks the component's own outcome,
	// but the component record still reports matched/unmatched so review
	// tooling can show what the matcher saw.
	state := stateUnmatched
	comp := ComponentRecord{Status: gear.StatusUnmatched}
	if match != nil {
		state = stateMatched
		comp.Status = gear.StatusMatched
		comp.Text = matchText(match, kind)
	} else {
		comp.Text = missText(miss, kind)
		comp.Pattern = miss.Pattern
	}
	if filtered {
		state = stateFiltered
	}
	return state, comp
}

// matchText picks display text for a matched component: verbatim source
// text wins, then a "brand model" join, then whichever half is present,
// then the unknown placeholder.
func matchText(match *ComponentMatch, kind gear.ComponentKind) string {
	if match.SourceText != "" {
		return match.SourceText
	}
	joined := strings.TrimSpace(match.Brand + " " + match.Model)
	if joined != "" {
		return joined
	}
	return unknownText(kind)
}

// missText picks display text for a failed attempt.
func missText(miss *ComponentMiss, kind gear.ComponentKind) string {
	if miss.Text != "" {
		return miss.Text
	}
	return unknownText(kind)
}

func unknownText(kind gear.ComponentKind) string {
	if kind == gear.ComponentKnot {
		return unknownKnot
	}
	return unknownHandle
}
