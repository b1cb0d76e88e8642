package rules

import (
	"testing"

	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/model/modeltest"
)

func TestRequiredFieldsRule_ValidUnits(t *testing.T) {
	wantClean(t, check(&RequiredFieldsRule{}, modeltest.CurrentUnit()))
	wantClean(t, check(&RequiredFieldsRule{}, modeltest.LegacyUnit()))
}

func TestRequiredFieldsRule_Missing(t *testing.T) {
	tests := []struct {
		name      string
		unit      func() model.ContentUnit
		wantField string
	}{
		{
			name:      "topic",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.Topic = "  "; return u },
			wantField: "topic",
		},
		{
			name:      "speaker",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.Dialogue[1].Speaker = ""; return u },
			wantField: "dialogue[1].speaker",
		},
		{
			name:      "alternative",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.Answers[0].Alternatives = []string{""}; return u },
			wantField: "answers[0].alternatives[0]",
		},
		{
			name:      "legacy note",
			unit:      func() model.ContentUnit { u := modeltest.LegacyUnit(); u.Feedback[0].Note = ""; return u },
			wantField: "feedback[0].note",
		},
		{
			name: "contrast native",
			unit: func() model.ContentUnit {
				u := modeltest.LegacyUnit()
				u.Feedback[0].Contrast[1].Native = ""
				return u
			},
			wantField: "feedback[0].contrast[1].native",
		},
		{
			name: "explanation fix",
			unit: func() model.ContentUnit {
				u := modeltest.CurrentUnit()
				u.ChunkFeedback[2].Explanation.Fix = ""
				return u
			},
			wantField: "chunk_feedback[2].explanation.fix",
		},
		{
			name:      "examples",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.ChunkFeedback[0].Examples = nil; return u },
			wantField: "chunk_feedback[0].examples",
		},
		{
			name:      "key pattern chunks",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.PatternSummary.KeyPatterns[1].Chunks = nil; return u },
			wantField: "pattern_summary.key_patterns[1].chunks",
		},
		{
			name:      "recall prompt",
			unit:      func() model.ContentUnit { u := modeltest.CurrentUnit(); u.ActiveRecall[0].Prompt = ""; return u },
			wantField: "active_recall[0].prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(&RequiredFieldsRule{}, tt.unit())
			if len(res.Errors) != 1 {
				t.Fatalf("got %d errors, want 1: %+v", len(res.Errors), res.Errors)
			}
			if res.Errors[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", res.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestRequiredFieldsRule_NoBlanksIsAWarning(t *testing.T) {
	u := model.ContentUnit{
		ID:       "service-4",
		Category: "Service",
		Topic:    "Ordering coffee",
		Dialogue: []model.DialogueLine{{Speaker: "Barista", Text: "What can I get you?"}},
	}

	res := check(&RequiredFieldsRule{}, u)
	if !res.Valid() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(res.Warnings))
	}
}

func TestRequiredFieldsRule_EmptyDialogue(t *testing.T) {
	u := modeltest.LegacyUnit()
	u.Dialogue = nil

	res := check(&RequiredFieldsRule{}, u)
	if findIssue(res.Errors, "dialogue is empty") == nil {
		t.Errorf("expected an empty dialogue error, got %+v", res.Errors)
	}
}
