// Package classifier determines which feedback schema generation a content
// unit uses. The result is computed once per unit and handed to every rule,
// so no rule re-inspects fields to guess the generation.
package classifier

import "github.com/pthm/scenariolint/internal/model"

// Generation is the schema generation of a unit.
type Generation int

const (
	// Undetermined units carry no feedback of either generation yet.
	Undetermined Generation = iota
	Legacy
	Current
	// Mixed units carry evidence of both generations.
	Mixed
)

func (g Generation) String() string {
	switch g {
	case Legacy:
		return "legacy"
	case Current:
		return "current"
	case Mixed:
		return "mixed"
	default:
		return "undetermined"
	}
}

// Classification is the generation tag plus the evidence behind it.
type Classification struct {
	Generation Generation

	HasLegacyFeedback  bool
	HasCurrentFeedback bool
	HasMappings        bool
	HasSummary         bool
	HasRecall          bool
}

// IsCurrent reports whether current-generation invariants apply.
func (c Classification) IsCurrent() bool {
	return c.Generation == Current || c.Generation == Mixed
}

// HasCurrentEvidence reports whether any current-generation collection is present.
func (c Classification) HasCurrentEvidence() bool {
	return c.HasCurrentFeedback || c.HasMappings || c.HasSummary || c.HasRecall
}

// Renderable is false when mappings, a summary or recall items exist
// without the current feedback they point into.
func (c Classification) Renderable() bool {
	if c.HasCurrentFeedback {
		return true
	}
	return !c.HasMappings && !c.HasSummary && !c.HasRecall
}

// Classify inspects a unit. It has no side effects.
func Classify(u *model.ContentUnit) Classification {
	c := Classification{
		HasLegacyFeedback:  len(u.Feedback) > 0,
		HasCurrentFeedback: len(u.ChunkFeedback) > 0,
		HasMappings:        len(u.BlankMappings) > 0,
		HasSummary:         u.PatternSummary != nil,
		HasRecall:          len(u.ActiveRecall) > 0,
	}

	current := c.HasCurrentEvidence()
	switch {
	case current && c.HasLegacyFeedback:
		c.Generation = Mixed
	case current:
		c.Generation = Current
	case c.HasLegacyFeedback:
		c.Generation = Legacy
	default:
		c.Generation = Undetermined
	}
	return c
}
