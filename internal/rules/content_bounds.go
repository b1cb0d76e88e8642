package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/model"
)

// ContentBoundsRule flags authored text and sub-collections whose size is
// outside the recommended range. Content outside bounds still renders, so
// findings are warnings; empty required text is left to required-fields.
type ContentBoundsRule struct{}

func (r *ContentBoundsRule) Name() string {
	return NameContentBounds
}

func (r *ContentBoundsRule) Description() string {
	return "Checks text lengths and collection sizes against the recommended ranges"
}

func (r *ContentBoundsRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit
	b := ctx.Config.Bounds

	for i, fb := range u.Feedback {
		base := fmt.Sprintf("feedback[%d]", i)
		countBounds(p, base+".situations", "situations", len(fb.Situations), b.Situations)
		countBounds(p, base+".usage_notes", "usage notes", len(fb.UsageNotes), b.UsageNotes)
		countBounds(p, base+".contrast", "contrast pairs", len(fb.Contrast), b.ContrastPairs)
	}

	for i, fb := range u.ChunkFeedback {
		// Zero examples is a required-fields error.
		if n := len(fb.Examples); n > 0 {
			countBounds(p, fmt.Sprintf("chunk_feedback[%d].examples", i), "examples", n, b.ChunkExamples)
		}
	}

	if s := u.PatternSummary; s != nil {
		p.result.Merge(CheckSummaryBounds(r.Name(), u.ID, "pattern_summary", s, b))
	}

	return p.result
}

// CheckSummaryBounds applies the summary bounds to s. It is shared with the
// enrichment validator, which checks summaries before they are imported.
func CheckSummaryBounds(rule, unitID, prefix string, s *model.PatternSummary, b config.Bounds) Result {
	p := &reporter{rule: rule, unitID: unitID}

	countBounds(p, prefix+".category_breakdown", "breakdown items", len(s.CategoryBreakdown), b.BreakdownItems)
	for i, cb := range s.CategoryBreakdown {
		lengthBounds(p, fmt.Sprintf("%s.category_breakdown[%d].insight", prefix, i), "breakdown insight", cb.Insight, b.BreakdownInsight)
	}
	lengthBounds(p, prefix+".overall_insight", "overall insight", s.OverallInsight, b.OverallInsight)

	countBounds(p, prefix+".key_patterns", "key patterns", len(s.KeyPatterns), b.KeyPatterns)
	for i, kp := range s.KeyPatterns {
		base := fmt.Sprintf("%s.key_patterns[%d]", prefix, i)
		lengthBounds(p, base+".pattern", "pattern name", kp.Pattern, b.PatternName)
		lengthBounds(p, base+".explanation", "pattern explanation", kp.Explanation, b.PatternExplanation)
	}

	return p.result
}

func countBounds(p *reporter, field, what string, n int, r config.Range) {
	if !r.Contains(n) {
		p.warnf(field, "%d %s, expected %s", n, what, r)
	}
}

func lengthBounds(p *reporter, field, what, text string, r config.Range) {
	if text == "" {
		return
	}
	if n := utf8.RuneCountInString(text); !r.Contains(n) {
		p.warnf(field, "%s is %d characters, expected %s", what, n, r)
	}
}
