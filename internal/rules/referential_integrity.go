package rules

import (
	"fmt"
)

// ReferentialIntegrityRule checks that every chunk reference resolves to a
// defined chunk and, for units with a pattern summary, that every defined
// chunk is referenced.
type ReferentialIntegrityRule struct{}

func (r *ReferentialIntegrityRule) Name() string {
	return NameReferentialIntegrity
}

func (r *ReferentialIntegrityRule) Description() string {
	return "Checks that chunk references resolve and that summarised units leave no chunk orphaned"
}

func (r *ReferentialIntegrityRule) Check(ctx *UnitContext) Result {
	p := newReporter(r.Name(), ctx)
	u := ctx.Unit

	defined := make(map[string]int, len(u.ChunkFeedback))
	for i, id := range u.ChunkIDs() {
		field := fmt.Sprintf("chunk_feedback[%d].chunk_id", i)
		if id == "" {
			continue // required-fields reports the missing id
		}
		if first, dup := defined[id]; dup {
			p.errorf(field, "chunk id %q is already defined by chunk_feedback[%d]", id, first)
			continue
		}
		defined[id] = i
	}

	if s := u.PatternSummary; s != nil {
		for i, b := range s.CategoryBreakdown {
			if b.Count != len(b.Examples) {
				p.errorf(fmt.Sprintf("pattern_summary.category_breakdown[%d].count", i),
					"breakdown %q declares count %d but lists %d examples", b.Category, b.Count, len(b.Examples))
			}
		}
	}

	// Without any definitions the unit cannot render; schema-exclusivity
	// reports that once instead of one dangling error per reference.
	if len(defined) == 0 {
		return p.result
	}

	referenced := make(map[string]bool)
	for _, ref := range u.ReferencedChunkIDs() {
		referenced[ref.ChunkID] = true
		if _, ok := defined[ref.ChunkID]; !ok {
			p.errorf(ref.Field, "dangling reference: chunk %q is not defined in chunk_feedback", ref.ChunkID)
		}
	}

	// Orphans are only enforced once a summary exists; units without one
	// are not required to reference every chunk.
	if u.PatternSummary != nil {
		for i, id := range u.ChunkIDs() {
			if id == "" || defined[id] != i {
				continue
			}
			if !referenced[id] {
				p.errorf(fmt.Sprintf("chunk_feedback[%d]", i), "orphaned chunk: %q is never referenced", id)
			}
		}
	}

	return p.result
}
