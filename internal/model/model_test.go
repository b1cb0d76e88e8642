package model

import (
	"testing"
)

func TestCountBlanks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no blanks", "Good morning.", 0},
		{"one blank", "Nice to ________ you.", 1},
		{"two blanks", "I ________ to ________ it.", 2},
		{"adjacent tokens count twice", "________________", 2},
		{"short run is not a blank", "Fill in ____ here.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountBlanks(tt.text, DefaultBlankToken); got != tt.want {
				t.Errorf("CountBlanks(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestBlanksNumberedInReadingOrder(t *testing.T) {
	u := &ContentUnit{
		Dialogue: []DialogueLine{
			{Speaker: "A", Text: "Hi, ________."},
			{Speaker: "B", Text: "No blanks here."},
			{Speaker: "A", Text: "I ________ you ________."},
		},
	}

	refs := Blanks(u, DefaultBlankToken)
	if len(refs) != 3 {
		t.Fatalf("Blanks() returned %d refs, want 3", len(refs))
	}

	want := []BlankRef{
		{Index: 1, Line: 0, Offset: 4},
		{Index: 2, Line: 2, Offset: 2},
		{Index: 3, Line: 2, Offset: 15},
	}
	for i, ref := range refs {
		if ref != want[i] {
			t.Errorf("refs[%d] = %+v, want %+v", i, ref, want[i])
		}
	}

	if got := DialogueBlankCount(u, DefaultBlankToken); got != 3 {
		t.Errorf("DialogueBlankCount() = %d, want 3", got)
	}
}

func TestParseCategories(t *testing.T) {
	if c, ok := ParseUnitCategory("social"); !ok || c != CategorySocial {
		t.Errorf("ParseUnitCategory(social) = %q, %v", c, ok)
	}
	if _, ok := ParseUnitCategory("Sports"); ok {
		t.Error("ParseUnitCategory(Sports) should fail")
	}
	if c, ok := ParseChunkCategory(" idioms "); !ok || c != ChunkIdioms {
		t.Errorf("ParseChunkCategory(idioms) = %q, %v", c, ok)
	}
	if _, ok := ParseChunkCategory("Grammar"); ok {
		t.Error("ParseChunkCategory(Grammar) should fail")
	}
}

func TestCategoryFromID(t *testing.T) {
	tests := []struct {
		id     string
		want   UnitCategory
		wantOK bool
	}{
		{"social-1", CategorySocial, true},
		{"Workplace-22", CategoryWorkplace, true},
		{"healthcare-3", CategoryHealthcare, true},
		{"socialite-1", "", false},
		{"misc-1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := CategoryFromID(tt.id)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CategoryFromID(%q) = %q, %v; want %q, %v", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReferencedChunkIDs(t *testing.T) {
	u := &ContentUnit{
		BlankMappings: []BlankMapping{{Blank: 1, ChunkID: "a"}},
		PatternSummary: &PatternSummary{
			CategoryBreakdown: []CategoryBreakdown{{Examples: []string{"a", "b"}}},
			KeyPatterns:       []KeyPattern{{Chunks: []string{"c"}}},
		},
		ActiveRecall: []ActiveRecallItem{{TargetChunks: []string{"d"}}},
	}

	refs := u.ReferencedChunkIDs()
	wantFields := []string{
		"blank_mappings[0]",
		"pattern_summary.category_breakdown[0].examples[0]",
		"pattern_summary.category_breakdown[0].examples[1]",
		"pattern_summary.key_patterns[0].chunks[0]",
		"active_recall[0].target_chunks[0]",
	}
	if len(refs) != len(wantFields) {
		t.Fatalf("got %d refs, want %d", len(refs), len(wantFields))
	}
	for i, ref := range refs {
		if ref.Field != wantFields[i] {
			t.Errorf("refs[%d].Field = %q, want %q", i, ref.Field, wantFields[i])
		}
	}
}
