package rules

import (
	"fmt"
	"strings"

	"github.com/pthm/scenariolint/internal/model"
)

// RequiredFieldsRule reports missing required fields. A missing field means
// the renderer cannot show the unit, so every finding is an error except
// the zero-blank case, which is only suspicious.
type RequiredFieldsRule struct{}

func (r *RequiredFieldsRule) Name() string {
	return NameRequiredFields
}

func (r *RequiredFieldsRule) Description() string {
	return "Checks that identifiers, dialogue, answers and feedback text are present"
}

func (r *RequiredFieldsRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit

	require(p, "id", u.ID)
	require(p, "category", u.Category)
	require(p, "topic", u.Topic)

	if len(u.Dialogue) == 0 {
		p.errorf("dialogue", "dialogue is empty")
	}
	for i, line := range u.Dialogue {
		require(p, fmt.Sprintf("dialogue[%d].speaker", i), line.Speaker)
		require(p, fmt.Sprintf("dialogue[%d].text", i), line.Text)
	}

	if model.DialogueBlankCount(u, ctx.Config.BlankToken) == 0 && len(u.Answers) == 0 {
		p.warnf("answers", "dialogue has no blanks and the unit has no answers")
	}
	for i, a := range u.Answers {
		require(p, fmt.Sprintf("answers[%d].answer", i), a.Answer)
		for j, alt := range a.Alternatives {
			require(p, fmt.Sprintf("answers[%d].alternatives[%d]", i, j), alt)
		}
	}

	for i, fb := range u.Feedback {
		base := fmt.Sprintf("feedback[%d]", i)
		require(p, base+".chunk", fb.Chunk)
		require(p, base+".category", fb.Category)
		require(p, base+".note", fb.Note)
		for j, c := range fb.Contrast {
			cp := fmt.Sprintf("%s.contrast[%d]", base, j)
			require(p, cp+".non_native", c.NonNative)
			require(p, cp+".native", c.Native)
		}
	}

	for i, fb := range u.ChunkFeedback {
		base := fmt.Sprintf("chunk_feedback[%d]", i)
		require(p, base+".chunk_id", fb.ChunkID)
		require(p, base+".chunk", fb.Chunk)
		e := fb.Explanation
		require(p, base+".explanation.meaning", e.Meaning)
		require(p, base+".explanation.usage", e.Usage)
		require(p, base+".explanation.common_mistake", e.CommonMistake)
		require(p, base+".explanation.fix", e.Fix)
		require(p, base+".explanation.why", e.Why)
		if len(fb.Examples) == 0 {
			p.errorf(base+".examples", "at least one example sentence is required")
		}
	}

	if s := u.PatternSummary; s != nil {
		require(p, "pattern_summary.overall_insight", s.OverallInsight)
		if len(s.CategoryBreakdown) == 0 {
			p.errorf("pattern_summary.category_breakdown", "pattern summary has no category breakdown")
		}
		for i, b := range s.CategoryBreakdown {
			base := fmt.Sprintf("pattern_summary.category_breakdown[%d]", i)
			require(p, base+".category", b.Category)
			require(p, base+".insight", b.Insight)
		}
		if len(s.KeyPatterns) == 0 {
			p.errorf("pattern_summary.key_patterns", "pattern summary has no key patterns")
		}
		for i, kp := range s.KeyPatterns {
			base := fmt.Sprintf("pattern_summary.key_patterns[%d]", i)
			require(p, base+".pattern", kp.Pattern)
			require(p, base+".explanation", kp.Explanation)
			if len(kp.Chunks) == 0 {
				p.errorf(base+".chunks", "key pattern lists no chunks")
			}
		}
	}

	for i, item := range u.ActiveRecall {
		base := fmt.Sprintf("active_recall[%d]", i)
		require(p, base+".prompt", item.Prompt)
		if len(item.TargetChunks) == 0 {
			p.errorf(base+".target_chunks", "recall item has no target chunks")
		}
	}

	return p.result
}

func require(p *reporter, field, value string) {
	if strings.TrimSpace(value) == "" {
		p.errorf(field, "%s is required", field)
	}
}
