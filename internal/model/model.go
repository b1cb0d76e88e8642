// Package model defines the record shapes shared by the corpus loader, the
// checkers and the enrichment validator. Records arrive from YAML or JSON
// corpus files and are read-only once loaded.
package model

// ContentUnit is one scenario: a dialogue with blanks, the accepted answers,
// and the feedback and summaries attached to it. A unit carries legacy
// feedback, current chunk feedback, or (while being migrated) both.
type ContentUnit struct {
	ID       string            `yaml:"id" json:"id"`
	Category string            `yaml:"category" json:"category"`
	Topic    string            `yaml:"topic" json:"topic"`
	Dialogue []DialogueLine    `yaml:"dialogue" json:"dialogue"`
	Answers  []AnswerVariation `yaml:"answers" json:"answers"`

	// Legacy generation, keyed by blank index.
	Feedback []LegacyFeedback `yaml:"feedback,omitempty" json:"feedback,omitempty"`

	// Current generation, keyed by chunk identifier.
	ChunkFeedback  []ChunkFeedback    `yaml:"chunk_feedback,omitempty" json:"chunk_feedback,omitempty"`
	BlankMappings  []BlankMapping     `yaml:"blank_mappings,omitempty" json:"blank_mappings,omitempty"`
	PatternSummary *PatternSummary    `yaml:"pattern_summary,omitempty" json:"pattern_summary,omitempty"`
	ActiveRecall   []ActiveRecallItem `yaml:"active_recall,omitempty" json:"active_recall,omitempty"`

	// FallbackNote documents a deliberate mix of both generations.
	FallbackNote string `yaml:"fallback_note,omitempty" json:"fallback_note,omitempty"`
}

// DialogueLine is a single speaker turn. Text may contain blank tokens.
type DialogueLine struct {
	Speaker string `yaml:"speaker" json:"speaker"`
	Text    string `yaml:"text" json:"text"`
}

// AnswerVariation lists the accepted fills for one blank (1-based).
type AnswerVariation struct {
	Blank        int      `yaml:"blank" json:"blank"`
	Answer       string   `yaml:"answer" json:"answer"`
	Alternatives []string `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
}

// LegacyFeedback is first-generation feedback attached to a blank index.
type LegacyFeedback struct {
	Blank      int            `yaml:"blank" json:"blank"`
	Chunk      string         `yaml:"chunk" json:"chunk"`
	Category   string         `yaml:"category" json:"category"`
	Note       string         `yaml:"note" json:"note"`
	Situations []string       `yaml:"situations" json:"situations"`
	UsageNotes []string       `yaml:"usage_notes" json:"usage_notes"`
	Contrast   []ContrastPair `yaml:"contrast" json:"contrast"`
}

// ContrastPair contrasts a non-native phrasing with the native one.
type ContrastPair struct {
	NonNative   string `yaml:"non_native" json:"non_native"`
	Native      string `yaml:"native" json:"native"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

// ChunkFeedback is current-generation feedback keyed by a stable chunk id.
type ChunkFeedback struct {
	ChunkID     string      `yaml:"chunk_id" json:"chunk_id"`
	Chunk       string      `yaml:"chunk" json:"chunk"`
	Category    string      `yaml:"category,omitempty" json:"category,omitempty"`
	Explanation Explanation `yaml:"explanation" json:"explanation"`
	Examples    []string    `yaml:"examples" json:"examples"`
}

// Explanation is the learner-facing block of a ChunkFeedback.
type Explanation struct {
	Meaning       string `yaml:"meaning" json:"meaning"`
	Usage         string `yaml:"usage" json:"usage"`
	CommonMistake string `yaml:"common_mistake" json:"common_mistake"`
	Fix           string `yaml:"fix" json:"fix"`
	Why           string `yaml:"why" json:"why"`
}

// BlankMapping binds a dialogue blank to the chunk that explains it.
type BlankMapping struct {
	Blank   int    `yaml:"blank" json:"blank"`
	ChunkID string `yaml:"chunk_id" json:"chunk_id"`
}

// PatternSummary links chunks into category breakdowns and key patterns.
type PatternSummary struct {
	CategoryBreakdown []CategoryBreakdown `yaml:"category_breakdown" json:"category_breakdown"`
	OverallInsight    string              `yaml:"overall_insight" json:"overall_insight"`
	KeyPatterns       []KeyPattern        `yaml:"key_patterns" json:"key_patterns"`
}

// CategoryBreakdown groups the chunks of one category.
type CategoryBreakdown struct {
	Category string   `yaml:"category" json:"category"`
	Count    int      `yaml:"count" json:"count"`
	Examples []string `yaml:"examples" json:"examples"`
	Insight  string   `yaml:"insight" json:"insight"`
}

// KeyPattern is a cross-cutting pattern spanning several chunks.
type KeyPattern struct {
	Pattern     string   `yaml:"pattern" json:"pattern"`
	Explanation string   `yaml:"explanation" json:"explanation"`
	Chunks      []string `yaml:"chunks" json:"chunks"`
}

// ActiveRecallItem is a spaced-repetition prompt targeting chunks.
type ActiveRecallItem struct {
	Prompt       string   `yaml:"prompt" json:"prompt"`
	TargetChunks []string `yaml:"target_chunks" json:"target_chunks"`
}

// AnswerFor returns the answer variation for a blank index.
func (u *ContentUnit) AnswerFor(blank int) (AnswerVariation, bool) {
	for _, a := range u.Answers {
		if a.Blank == blank {
			return a, true
		}
	}
	return AnswerVariation{}, false
}
