package rules

import (
	"fmt"

	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/naturalness"
)

// AnswerNaturalnessRule substitutes every answer and alternative into its
// dialogue line and applies the naturalness heuristics. It is the strict,
// optional check run before merging.
type AnswerNaturalnessRule struct{}

func (r *AnswerNaturalnessRule) Name() string {
	return NameAnswerNaturalness
}

func (r *AnswerNaturalnessRule) Description() string {
	return "Checks that answer alternatives read naturally in their dialogue line"
}

func (r *AnswerNaturalnessRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit
	token := ctx.Config.BlankToken
	checker := naturalness.New(ctx.Config.Naturalness)

	refs := model.Blanks(u, token)
	primaries := make(map[int]string, len(u.Answers))
	for _, a := range u.Answers {
		primaries[a.Blank] = a.Answer
	}

	for i, a := range u.Answers {
		if a.Blank < 1 || a.Blank > len(refs) || a.Answer == "" {
			continue // count-consistency and required-fields cover these
		}
		ref := refs[a.Blank-1]
		line := u.Dialogue[ref.Line].Text
		fill := func(candidate string) string {
			return naturalness.Fill(line, token, lineValues(refs, ref, primaries, candidate))
		}

		field := fmt.Sprintf("answers[%d].answer", i)
		sentence := fill(a.Answer)
		r.report(p, field, sentence, checker.CheckStructure(sentence))

		for j, alt := range a.Alternatives {
			if alt == "" {
				continue
			}
			field := fmt.Sprintf("answers[%d].alternatives[%d]", i, j)
			sentence := fill(alt)
			findings := checker.CheckStructure(sentence)
			findings = append(findings, checker.Compare(a.Answer, alt, line)...)
			r.report(p, field, sentence, findings)
		}
	}

	return p.result
}

func (r *AnswerNaturalnessRule) report(p *reporter, field, sentence string, findings []naturalness.Finding) {
	for _, f := range findings {
		sev := Warning
		if f.Grade == naturalness.GradeError {
			sev = Error
		}
		p.result.Add(Issue{
			Rule:     r.Name(),
			Severity: sev,
			Message:  f.Message,
			UnitID:   p.unitID,
			Field:    field,
			Kind:     string(f.Kind),
			Context:  sentence,
		})
	}
}

// lineValues returns, for each blank on target's line, the text to fill in:
// the candidate for the target blank and the primary answer for the others.
func lineValues(refs []model.BlankRef, target model.BlankRef, primaries map[int]string, candidate string) []string {
	var values []string
	for _, ref := range refs {
		if ref.Line != target.Line {
			continue
		}
		if ref.Index == target.Index {
			values = append(values, candidate)
		} else {
			values = append(values, primaries[ref.Index])
		}
	}
	return values
}
