package model

import "strings"

// DefaultBlankToken is the literal marker for a blank in dialogue text.
const DefaultBlankToken = "________"

// BlankRef locates one blank. Index is 1-based across the whole dialogue;
// Offset is the byte offset of the token in the line text.
type BlankRef struct {
	Index  int
	Line   int
	Offset int
}

// CountBlanks counts non-overlapping occurrences of token in text.
func CountBlanks(text, token string) int {
	if token == "" {
		return 0
	}
	return strings.Count(text, token)
}

// Blanks returns every blank of the unit in reading order.
func Blanks(u *ContentUnit, token string) []BlankRef {
	if token == "" {
		return nil
	}
	var refs []BlankRef
	n := 0
	for lineIdx, line := range u.Dialogue {
		pos := 0
		for {
			i := strings.Index(line.Text[pos:], token)
			if i < 0 {
				break
			}
			n++
			refs = append(refs, BlankRef{Index: n, Line: lineIdx, Offset: pos + i})
			pos += i + len(token)
		}
	}
	return refs
}

// DialogueBlankCount sums the blanks of every dialogue line.
func DialogueBlankCount(u *ContentUnit, token string) int {
	total := 0
	for _, line := range u.Dialogue {
		total += CountBlanks(line.Text, token)
	}
	return total
}
