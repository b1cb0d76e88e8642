package rules

import (
	"testing"

	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/model/modeltest"
)

func greetingUnit(alternatives ...string) model.ContentUnit {
	return model.ContentUnit{
		ID:       "social-2",
		Category: "Social",
		Topic:    "Greeting",
		Dialogue: []model.DialogueLine{{Speaker: "Sam", Text: "Nice to ________ you."}},
		Answers:  []model.AnswerVariation{{Blank: 1, Answer: "meet", Alternatives: alternatives}},
	}
}

func TestAnswerNaturalnessRule_ValidUnits(t *testing.T) {
	wantClean(t, check(&AnswerNaturalnessRule{}, modeltest.CurrentUnit()))
	wantClean(t, check(&AnswerNaturalnessRule{}, modeltest.LegacyUnit()))
}

func TestAnswerNaturalnessRule(t *testing.T) {
	tests := []struct {
		name         string
		alternative  string
		wantErrors   int
		wantWarnings int
		wantKind     string
	}{
		{name: "natural alternative", alternative: "see"},
		{name: "duplicated word", alternative: "meet meet", wantErrors: 1, wantKind: "structure"},
		{name: "different part of speech", alternative: "happiness", wantWarnings: 1, wantKind: "semantic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(&AnswerNaturalnessRule{}, greetingUnit(tt.alternative))
			if len(res.Errors) != tt.wantErrors || len(res.Warnings) != tt.wantWarnings {
				t.Fatalf("got %d errors and %d warnings, want %d and %d: %+v",
					len(res.Errors), len(res.Warnings), tt.wantErrors, tt.wantWarnings, res.Issues())
			}
			issues := res.Issues()
			if len(issues) == 0 {
				return
			}
			if issues[0].Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", issues[0].Kind, tt.wantKind)
			}
			if issues[0].Field != "answers[0].alternatives[0]" {
				t.Errorf("Field = %q", issues[0].Field)
			}
		})
	}
}

func TestAnswerNaturalnessRule_ContextIsFilledSentence(t *testing.T) {
	res := check(&AnswerNaturalnessRule{}, greetingUnit("meet meet"))
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(res.Errors))
	}
	if got := res.Errors[0].Context; got != "Nice to meet meet you." {
		t.Errorf("Context = %q", got)
	}
}

func TestAnswerNaturalnessRule_SkipsUnmatchedAnswers(t *testing.T) {
	u := greetingUnit("see")
	u.Answers = append(u.Answers, model.AnswerVariation{Blank: 4, Answer: "later"})
	wantClean(t, check(&AnswerNaturalnessRule{}, u))
}

func TestLineValues(t *testing.T) {
	u := &model.ContentUnit{
		Dialogue: []model.DialogueLine{
			{Speaker: "A", Text: "Hi, ________."},
			{Speaker: "B", Text: "I ________ to ________ it."},
		},
	}
	refs := model.Blanks(u, model.DefaultBlankToken)
	primaries := map[int]string{1: "there", 2: "want", 3: "see"}

	got := lineValues(refs, refs[2], primaries, "try")
	want := []string{"want", "try"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("lineValues() = %v, want %v", got, want)
	}
}
