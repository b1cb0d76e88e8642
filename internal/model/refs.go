package model

import "fmt"

// ChunkRef is one reference to a chunk identifier and where it was found.
type ChunkRef struct {
	ChunkID string
	Field   string
}

// ChunkIDs returns the chunk identifiers defined by current feedback, in
// declaration order. Duplicates are kept.
func (u *ContentUnit) ChunkIDs() []string {
	ids := make([]string, 0, len(u.ChunkFeedback))
	for _, fb := range u.ChunkFeedback {
		ids = append(ids, fb.ChunkID)
	}
	return ids
}

// ReferencedChunkIDs collects every chunk reference made by mappings, the
// pattern summary and recall items.
func (u *ContentUnit) ReferencedChunkIDs() []ChunkRef {
	var refs []ChunkRef
	for i, m := range u.BlankMappings {
		refs = append(refs, ChunkRef{ChunkID: m.ChunkID, Field: fmt.Sprintf("blank_mappings[%d]", i)})
	}
	if s := u.PatternSummary; s != nil {
		refs = append(refs, s.References("pattern_summary")...)
	}
	for i, item := range u.ActiveRecall {
		for j, id := range item.TargetChunks {
			refs = append(refs, ChunkRef{ChunkID: id, Field: fmt.Sprintf("active_recall[%d].target_chunks[%d]", i, j)})
		}
	}
	return refs
}

// References returns the chunk references of a summary, with field paths
// rooted at prefix.
func (s *PatternSummary) References(prefix string) []ChunkRef {
	var refs []ChunkRef
	for i, b := range s.CategoryBreakdown {
		for j, id := range b.Examples {
			refs = append(refs, ChunkRef{ChunkID: id, Field: fmt.Sprintf("%s.category_breakdown[%d].examples[%d]", prefix, i, j)})
		}
	}
	for i, kp := range s.KeyPatterns {
		for j, id := range kp.Chunks {
			refs = append(refs, ChunkRef{ChunkID: id, Field: fmt.Sprintf("%s.key_patterns[%d].chunks[%d]", prefix, i, j)})
		}
	}
	return refs
}
