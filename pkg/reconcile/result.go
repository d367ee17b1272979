package reconcile

import "github.com/lathercraft/lathermap/pkg/gear"

// Record is the reconciled outcome for one raw matcher result: the main
// verdict plus per-component records for whichever components were
// attempted. Records are immutable value objects created fresh per call.
type Record struct {
	Main       Main                                     `json:"main" yaml:"main"`
	Components map[gear.ComponentKind]ComponentRecord `json:"components,omitempty" yaml:"components,omitempty"`
}

// Main carries the record-wide fields and the aggregate verdict.
type Main struct {
	Text        string           `json:"text" yaml:"text"`
	Count       int              `json:"count" yaml:"count"`
	EvidenceIDs []string         `json:"evidence_ids" yaml:"evidence_ids"`
	Examples    []string         `json:"examples" yaml:"examples"`
	Status      gear.MatchStatus `json:"status" yaml:"status"`
}

// ComponentRecord is the reconciled outcome for one handle or knot.
// Status here is always Matched or Unmatched; a record-wide filter verdict
// lives on Main, not on components.
type ComponentRecord struct {
	Text    string           `json:"text" yaml:"text"`
	Status  gear.MatchStatus `json:"status" yaml:"status"`
	Pattern string           `json:"pattern,omitempty" yaml:"pattern,omitempty"` // Diagnostic: the pattern a failed attempt ran against
}

// Component returns the record for one component and whether that
// component was attempted at all.
func (r Record) Component(kind gear.ComponentKind) (ComponentRecord, bool) {
	c, ok := r.Components[kind]
	return c, ok
}
