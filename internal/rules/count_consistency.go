package rules

import (
	"fmt"

	"github.com/pthm/scenariolint/internal/model"
)

// CountConsistencyRule compares the dialogue blank count with the answer,
// feedback and mapping collections.
type CountConsistencyRule struct{}

func (r *CountConsistencyRule) Name() string {
	return NameCountConsistency
}

func (r *CountConsistencyRule) Description() string {
	return "Checks that blanks, answers, feedback and blank mappings line up one to one"
}

func (r *CountConsistencyRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit
	blanks := model.DialogueBlankCount(u, ctx.Config.BlankToken)

	if len(u.Answers) != blanks {
		p.errorf("answers", "dialogue has %d blanks but %d answers", blanks, len(u.Answers))
	}

	if ctx.Schema.IsCurrent() {
		// Mappings without any feedback cannot render, so an empty
		// collection is a mismatch too.
		if len(u.ChunkFeedback) == 0 && len(u.Feedback) > 0 {
			if len(u.Feedback) != blanks {
				p.errorf("feedback", "dialogue has %d blanks but %d feedback items", blanks, len(u.Feedback))
			}
		} else if len(u.ChunkFeedback) != blanks {
			p.errorf("chunk_feedback", "dialogue has %d blanks but %d chunk feedback items", blanks, len(u.ChunkFeedback))
		}
		if len(u.BlankMappings) != blanks {
			p.errorf("blank_mappings", "dialogue has %d blanks but %d blank mappings", blanks, len(u.BlankMappings))
		}
	} else if ctx.Schema.HasLegacyFeedback && len(u.Feedback) != blanks {
		// Legacy feedback completeness is advisory.
		p.warnf("feedback", "dialogue has %d blanks but %d feedback items", blanks, len(u.Feedback))
	}

	checkIndexes(p, "answers", blanks, len(u.Answers), func(i int) int { return u.Answers[i].Blank })
	checkIndexes(p, "blank_mappings", blanks, len(u.BlankMappings), func(i int) int { return u.BlankMappings[i].Blank })
	if !ctx.Schema.IsCurrent() {
		checkIndexes(p, "feedback", blanks, len(u.Feedback), func(i int) int { return u.Feedback[i].Blank })
	}

	return p.result
}

// checkIndexes verifies that each blank index is within [1, blanks] and
// used at most once.
func checkIndexes(p *reporter, field string, blanks, n int, index func(int) int) {
	seen := make(map[int]int, n)
	for i := 0; i < n; i++ {
		idx := index(i)
		path := fmt.Sprintf("%s[%d].blank", field, i)
		if idx < 1 || idx > blanks {
			p.errorf(path, "blank index %d is outside 1-%d", idx, blanks)
			continue
		}
		if first, dup := seen[idx]; dup {
			p.errorf(path, "blank index %d already used by %s[%d]", idx, field, first)
			continue
		}
		seen[idx] = i
	}
}
