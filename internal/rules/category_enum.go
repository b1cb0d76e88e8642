package rules

import (
	"fmt"

	"github.com/pthm/scenariolint/internal/model"
)

// CategoryEnumRule checks category values against the fixed enums.
type CategoryEnumRule struct{}

func (r *CategoryEnumRule) Name() string {
	return NameCategoryEnum
}

func (r *CategoryEnumRule) Description() string {
	return "Checks unit and chunk categories against the fixed category sets"
}

func (r *CategoryEnumRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit

	if u.Category != "" {
		if _, ok := model.ParseUnitCategory(u.Category); !ok {
			p.errorf("category", "unknown unit category %q", u.Category)
		}
	}

	for i, fb := range u.Feedback {
		chunkCategory(p, fmt.Sprintf("feedback[%d].category", i), fb.Category)
	}
	for i, fb := range u.ChunkFeedback {
		chunkCategory(p, fmt.Sprintf("chunk_feedback[%d].category", i), fb.Category)
	}
	if s := u.PatternSummary; s != nil {
		p.result.Merge(CheckBreakdownCategories(r.Name(), u.ID, "pattern_summary", s))
	}

	return p.result
}

// CheckBreakdownCategories validates every breakdown category of s.
func CheckBreakdownCategories(rule, unitID, prefix string, s *model.PatternSummary) Result {
	p := &reporter{rule: rule, unitID: unitID}
	for i, b := range s.CategoryBreakdown {
		chunkCategory(p, fmt.Sprintf("%s.category_breakdown[%d].category", prefix, i), b.Category)
	}
	return p.result
}

// chunkCategory reports an unknown non-empty chunk category. Empty values
// belong to required-fields.
func chunkCategory(p *reporter, field, value string) {
	if value == "" {
		return
	}
	if _, ok := model.ParseChunkCategory(value); !ok {
		p.errorf(field, "unknown chunk category %q", value)
	}
}
