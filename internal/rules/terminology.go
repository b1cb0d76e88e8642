package rules

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pthm/scenariolint/internal/model"
)

// TerminologyRule flags grammar jargon in feedback and summaries. Feedback
// should explain what a phrase does, not which part of speech it is.
type TerminologyRule struct{}

func (r *TerminologyRule) Name() string {
	return NameTerminology
}

func (r *TerminologyRule) Description() string {
	return "Checks enrichment text for grammar terminology from the blocklist"
}

func (r *TerminologyRule) Check(ctx *UnitContext) Result {
	return ScanTerminology(r.Name(), ctx.Unit.ID, UnitText(ctx.Unit), ctx.Config.Terminology)
}

// TextField is a piece of authored text and its record path.
type TextField struct {
	Field string
	Text  string
}

// UnitText returns the learner-facing enrichment text of a unit.
func UnitText(u *model.ContentUnit) []TextField {
	var fields []TextField
	add := func(field, text string) {
		if text != "" {
			fields = append(fields, TextField{Field: field, Text: text})
		}
	}

	for i, fb := range u.Feedback {
		base := fmt.Sprintf("feedback[%d]", i)
		add(base+".note", fb.Note)
		for j, n := range fb.UsageNotes {
			add(fmt.Sprintf("%s.usage_notes[%d]", base, j), n)
		}
		for j, c := range fb.Contrast {
			add(fmt.Sprintf("%s.contrast[%d].explanation", base, j), c.Explanation)
		}
	}
	for i, fb := range u.ChunkFeedback {
		base := fmt.Sprintf("chunk_feedback[%d].explanation", i)
		e := fb.Explanation
		add(base+".meaning", e.Meaning)
		add(base+".usage", e.Usage)
		add(base+".common_mistake", e.CommonMistake)
		add(base+".fix", e.Fix)
		add(base+".why", e.Why)
	}
	if s := u.PatternSummary; s != nil {
		fields = append(fields, SummaryText("pattern_summary", s)...)
	}
	return fields
}

// SummaryText returns the authored text of a pattern summary.
func SummaryText(prefix string, s *model.PatternSummary) []TextField {
	var fields []TextField
	for i, b := range s.CategoryBreakdown {
		fields = append(fields, TextField{Field: fmt.Sprintf("%s.category_breakdown[%d].insight", prefix, i), Text: b.Insight})
	}
	fields = append(fields, TextField{Field: prefix + ".overall_insight", Text: s.OverallInsight})
	for i, kp := range s.KeyPatterns {
		base := fmt.Sprintf("%s.key_patterns[%d]", prefix, i)
		fields = append(fields,
			TextField{Field: base + ".pattern", Text: kp.Pattern},
			TextField{Field: base + ".explanation", Text: kp.Explanation},
		)
	}
	return fields
}

// ScanTerminology reports one warning per field that contains blocked terms.
func ScanTerminology(rule, unitID string, fields []TextField, terms []string) Result {
	p := &reporter{rule: rule, unitID: unitID}
	re := terminologyPattern(terms)
	if re == nil {
		return p.result
	}

	for _, f := range fields {
		matches := re.FindAllString(f.Text, -1)
		if len(matches) == 0 {
			continue
		}
		found := uniqueLower(matches)
		p.result.Add(Issue{
			Rule:     rule,
			Severity: Warning,
			Message:  fmt.Sprintf("grammar terminology %s; explain what the phrase does instead", quoteJoin(found)),
			UnitID:   unitID,
			Field:    f.Field,
			Context:  f.Text,
		})
	}
	return p.result
}

// patternCache caches compiled blocklist patterns by term list.
var patternCache sync.Map // map[string]*regexp.Regexp

func terminologyPattern(terms []string) *regexp.Regexp {
	if len(terms) == 0 {
		return nil
	}
	key := strings.Join(terms, "\x00")
	if cached, ok := patternCache.Load(key); ok {
		return cached.(*regexp.Regexp)
	}

	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		// Multi-word terms match across any run of whitespace.
		words := strings.Fields(regexp.QuoteMeta(t))
		quoted = append(quoted, strings.Join(words, `\s+`))
	}
	re := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)s?\b`)
	patternCache.Store(key, re)
	return re
}

func uniqueLower(words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		w = strings.ToLower(strings.Join(strings.Fields(w), " "))
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func quoteJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, ", ")
}
