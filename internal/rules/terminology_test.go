package rules

import (
	"testing"

	"github.com/pthm/scenariolint/internal/model/modeltest"
)

func TestTerminologyRule_ValidUnits(t *testing.T) {
	wantClean(t, check(&TerminologyRule{}, modeltest.CurrentUnit()))
	wantClean(t, check(&TerminologyRule{}, modeltest.LegacyUnit()))
}

func TestTerminologyRule_FlagsFeedback(t *testing.T) {
	u := modeltest.CurrentUnit()
	u.ChunkFeedback[1].Explanation.Usage = "Put the verb before the noun."

	res := check(&TerminologyRule{}, u)
	if !res.Valid() {
		t.Fatalf("terminology must only warn: %+v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1 per field: %+v", len(res.Warnings), res.Warnings)
	}
	w := res.Warnings[0]
	if w.Field != "chunk_feedback[1].explanation.usage" {
		t.Errorf("Field = %q", w.Field)
	}
	want := `grammar terminology "verb", "noun"; explain what the phrase does instead`
	if w.Message != want {
		t.Errorf("Message = %q, want %q", w.Message, want)
	}
	if w.Context != "Put the verb before the noun." {
		t.Errorf("Context = %q", w.Context)
	}
}

func TestScanTerminology(t *testing.T) {
	terms := []string{"noun", "verb", "phrasal verb", "article"}

	tests := []struct {
		name      string
		text      string
		wantMatch bool
		wantMsg   string
	}{
		{"plain text", "Say it with a smile.", false, ""},
		{"plural", "These Nouns carry the meaning.", true, `grammar terminology "nouns";`},
		{"multi-word", "This phrasal   verb is relaxed.", true, `grammar terminology "phrasal verb"`},
		{"embedded word", "A verbal promise is enough.", false, ""},
		{"repeated term counts once", "Article or article", true, `grammar terminology "article";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScanTerminology("terminology", "social-1", []TextField{{Field: "f", Text: tt.text}}, terms)
			if got := len(res.Warnings) == 1; got != tt.wantMatch {
				t.Fatalf("match = %v, want %v (%+v)", got, tt.wantMatch, res.Warnings)
			}
			if tt.wantMatch && findIssue(res.Warnings, tt.wantMsg) == nil {
				t.Errorf("message %q does not contain %q", res.Warnings[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestScanTerminology_EmptyBlocklist(t *testing.T) {
	res := ScanTerminology("terminology", "social-1", []TextField{{Field: "f", Text: "noun"}}, nil)
	if !res.Empty() {
		t.Errorf("expected no findings, got %+v", res.Warnings)
	}
}

func TestSummaryTextPaths(t *testing.T) {
	s := modeltest.CurrentUnit().PatternSummary
	fields := SummaryText("block", s)
	// two insights, the overall insight, and a name plus explanation per pattern
	if len(fields) != 2+1+4 {
		t.Fatalf("got %d fields, want 7", len(fields))
	}
	if fields[2].Field != "block.overall_insight" {
		t.Errorf("fields[2].Field = %q", fields[2].Field)
	}
	if fields[6].Field != "block.key_patterns[1].explanation" {
		t.Errorf("fields[6].Field = %q", fields[6].Field)
	}
}
