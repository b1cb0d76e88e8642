package rules

import (
	"strings"

	"github.com/pthm/scenariolint/internal/classifier"
)

// SchemaExclusivityRule enforces that a unit does not present
// current-generation structure it cannot render, and that generations are
// only mixed deliberately.
type SchemaExclusivityRule struct{}

func (r *SchemaExclusivityRule) Name() string {
	return NameSchemaExclusivity
}

func (r *SchemaExclusivityRule) Description() string {
	return "Checks that legacy and current feedback generations are not mixed without a fallback note"
}

func (r *SchemaExclusivityRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	s := ctx.Schema

	if !s.Renderable() {
		var present []string
		if s.HasMappings {
			present = append(present, "blank_mappings")
		}
		if s.HasSummary {
			present = append(present, "pattern_summary")
		}
		if s.HasRecall {
			present = append(present, "active_recall")
		}
		p.errorf("chunk_feedback", "%s present without chunk_feedback; the unit cannot render", strings.Join(present, ", "))
	}

	if s.Generation == classifier.Mixed && strings.TrimSpace(ctx.Unit.FallbackNote) == "" {
		p.warnf("fallback_note", "unit mixes legacy feedback with current-generation data but has no fallback_note")
	}

	return p.result
}
