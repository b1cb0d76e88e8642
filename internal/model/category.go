package model

import "strings"

// UnitCategory is the scenario category. Unit identifiers are prefixed with
// the lowercase category name ("social-12").
type UnitCategory string

const (
	CategorySocial     UnitCategory = "Social"
	CategoryWorkplace  UnitCategory = "Workplace"
	CategoryService    UnitCategory = "Service"
	CategoryAcademic   UnitCategory = "Academic"
	CategoryHealthcare UnitCategory = "Healthcare"
	CategoryCommunity  UnitCategory = "Community"
)

// UnitCategories is the fixed set of scenario categories in display order.
var UnitCategories = []UnitCategory{
	CategorySocial,
	CategoryWorkplace,
	CategoryService,
	CategoryAcademic,
	CategoryHealthcare,
	CategoryCommunity,
}

// ParseUnitCategory matches s case-insensitively against UnitCategories.
func ParseUnitCategory(s string) (UnitCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range UnitCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Prefix returns the identifier prefix for units of this category.
func (c UnitCategory) Prefix() string {
	return strings.ToLower(string(c)) + "-"
}

// ChunkCategory classifies the pedagogical function of a chunk.
type ChunkCategory string

const (
	ChunkOpeners      ChunkCategory = "Openers"
	ChunkSoftening    ChunkCategory = "Softening"
	ChunkDisagreement ChunkCategory = "Disagreement"
	ChunkReactions    ChunkCategory = "Reactions"
	ChunkIdioms       ChunkCategory = "Idioms"
	ChunkClosers      ChunkCategory = "Closers"
)

// ChunkCategories is the fixed set used by feedback and breakdowns.
var ChunkCategories = []ChunkCategory{
	ChunkOpeners,
	ChunkSoftening,
	ChunkDisagreement,
	ChunkReactions,
	ChunkIdioms,
	ChunkClosers,
}

// ParseChunkCategory matches s case-insensitively against ChunkCategories.
func ParseChunkCategory(s string) (ChunkCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range ChunkCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// CategoryFromID returns the category implied by a unit identifier prefix.
func CategoryFromID(id string) (UnitCategory, bool) {
	lower := strings.ToLower(id)
	for _, c := range UnitCategories {
		if strings.HasPrefix(lower, c.Prefix()) {
			return c, true
		}
	}
	return "", false
}
