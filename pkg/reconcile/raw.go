package reconcile

import "github.com/lathercraft/lathermap/pkg/gear"

// RawMatch is the upstream matcher's output for one distinct text value.
// Every field except Item is optional; upstream output is not
// schema-validated before it reaches this layer, so consumers must treat
// any field as possibly absent.
type RawMatch struct {
	Item        string        `json:"item" yaml:"item"`                                   // Original free text
	Count       int           `json:"count" yaml:"count"`                                 // Observed occurrences
	EvidenceIDs []string      `json:"evidence_ids,omitempty" yaml:"evidence_ids,omitempty"` // First-seen order, duplicates allowed
	Examples    []string      `json:"examples,omitempty" yaml:"examples,omitempty"`
	Kind        gear.MatchKind `json:"kind,omitempty" yaml:"kind,omitempty"`              // KindFiltered short-circuits all status logic
	Matched     *Matched      `json:"matched,omitempty" yaml:"matched,omitempty"`
	Unmatched   *Unmatched    `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}

// Matched carries the matcher's successful guesses. Handle and Knot are
// independently optional; a nil pointer means that component was not
// attempted (or failed, when the mirror Unmatched field is set instead).
type Matched struct {
	Brand  string          `json:"brand,omitempty" yaml:"brand,omitempty"`
	Model  string          `json:"model,omitempty" yaml:"model,omitempty"`
	Handle *ComponentMatch `json:"handle,omitempty" yaml:"handle,omitempty"`
	Knot   *ComponentMatch `json:"knot,omitempty" yaml:"knot,omitempty"`
}

// ComponentMatch is a successful per-component guess.
type ComponentMatch struct {
	Brand      string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	SourceText string `json:"source_text,omitempty" yaml:"source_text,omitempty"` // Verbatim slice of the input text, preferred for display
}

// Unmatched mirrors Matched for components the matcher attempted but could
// not match. For a given component, Matched and Unmatched are never both
// set; absence of both means the component was not attempted.
type Unmatched struct {
	Handle *ComponentMiss `json:"handle,omitempty" yaml:"handle,omitempty"`
	Knot   *ComponentMiss `json:"knot,omitempty" yaml:"knot,omitempty"`
}

// ComponentMiss is a failed per-component attempt.
type ComponentMiss struct {
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"` // Pattern that was tried, carried through for diagnostics
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`       // Text the attempt ran against
}

// componentMatch returns the match data for one component, nil-safe.
func (r *RawMatch) componentMatch(kind gear.ComponentKind) *ComponentMatch {
	if r == nil || r.Matched == nil {
		return nil
	}
	switch kind {
	case gear.ComponentHandle:
		return r.Matched.Handle
	case gear.ComponentKnot:
		return r.Matched.Knot
	}
	return nil
}

// componentMiss returns the failed-attempt data for one component, nil-safe.
func (r *RawMatch) componentMiss(kind gear.ComponentKind) *ComponentMiss {
	if r == nil || r.Unmatched == nil {
		return nil
	}
	switch kind {
	case gear.ComponentHandle:
		return r.Unmatched.Handle
	case gear.ComponentKnot:
		return r.Unmatched.Knot
	}
	return nil
}
