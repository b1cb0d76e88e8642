package corpus

import (
	"github.com/pthm/scenariolint/internal/classifier"
	"github.com/pthm/scenariolint/internal/model"
)

// Stats are aggregate counts over a set of units.
type Stats struct {
	Units           int            `json:"units"`
	ByGeneration    map[string]int `json:"by_generation"`
	ByCategory      map[string]int `json:"by_category"`
	Blanks          int            `json:"blanks"`
	Answers         int            `json:"answers"`
	Alternatives    int            `json:"alternatives"`
	ChunkFeedback   int            `json:"chunk_feedback"`
	ChunkReferences int            `json:"chunk_references"`
	Summaries       int            `json:"summaries"`
	RecallItems     int            `json:"recall_items"`
	Unrenderable    int            `json:"unrenderable"`
}

// ComputeStats counts units by generation and category along with their
// blanks, answers and chunk references.
func ComputeStats(units []model.ContentUnit, token string) *Stats {
	s := &Stats{
		ByGeneration: make(map[string]int),
		ByCategory:   make(map[string]int),
	}

	for i := range units {
		u := &units[i]
		s.Units++

		c := classifier.Classify(u)
		s.ByGeneration[c.Generation.String()]++
		if !c.Renderable() {
			s.Unrenderable++
		}

		category := u.Category
		if parsed, ok := model.ParseUnitCategory(u.Category); ok {
			category = string(parsed)
		}
		if category == "" {
			category = "(none)"
		}
		s.ByCategory[category]++

		s.Blanks += model.DialogueBlankCount(u, token)
		s.Answers += len(u.Answers)
		for _, a := range u.Answers {
			s.Alternatives += len(a.Alternatives)
		}
		s.ChunkFeedback += len(u.ChunkFeedback)
		s.ChunkReferences += len(u.ReferencedChunkIDs())
		if u.PatternSummary != nil {
			s.Summaries++
		}
		s.RecallItems += len(u.ActiveRecall)
	}

	return s
}
