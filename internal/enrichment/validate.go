package enrichment

import (
	"fmt"
	"strings"

	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/rules"
)

// Rule names used for enrichment findings.
const (
	RuleParse        = "enrichment-parse"
	RuleHeader       = "enrichment-header"
	RuleBatchSize    = "batch-size"
	RuleCategoryLock = "category-lock"
	RuleUnknownUnit  = "unknown-unit"
	RuleBlock        = "enrichment-block"
)

// Corpus looks up the units an enrichment file refers to.
type Corpus interface {
	Unit(id string) (*model.ContentUnit, bool)
}

// Validate checks a parsed file against the corpus. Parse errors are
// reported as errors first; validation still runs on whatever parsed.
func Validate(f *File, corpus Corpus, cfg *config.Config) rules.Result {
	var res rules.Result
	v := &validator{file: f, corpus: corpus, cfg: cfg, res: &res}

	for _, pe := range f.Errors {
		v.add(RuleParse, rules.Error, "", "", pe.Line, "%s", pe.Msg)
	}
	category, ok := v.checkHeader()
	v.checkBatch()
	if ok {
		v.checkCategoryLock(category)
	}
	v.checkSections()

	return res
}

type validator struct {
	file   *File
	corpus Corpus
	cfg    *config.Config
	res    *rules.Result
}

func (v *validator) add(rule string, sev rules.Severity, unitID, field string, line int, format string, args ...any) {
	issue := rules.Issue{
		Rule:     rule,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		UnitID:   unitID,
		Field:    field,
	}
	if line > 0 {
		issue.Context = fmt.Sprintf("%s:%d", v.file.Path, line)
	}
	v.res.Add(issue)
}

// checkHeader validates header values and returns the declared category
// when it is usable for the category lock.
func (v *validator) checkHeader() (model.UnitCategory, bool) {
	h := v.file.Header

	var category model.UnitCategory
	var ok bool
	if h.Category != "" {
		category, ok = model.ParseUnitCategory(h.Category)
		if !ok {
			v.add(RuleHeader, rules.Error, "", "header.category", 1, "unknown category %q", h.Category)
		}
	}

	if h.SourceFile != "" && !strings.HasSuffix(strings.ToLower(h.SourceFile), ".md") {
		v.add(RuleHeader, rules.Error, "", "header.source_file", 2, "source file %q is not a .md file", h.SourceFile)
	}

	if h.Declared >= 0 && h.Declared != len(v.file.Sections) {
		v.add(RuleHeader, rules.Warning, "", "header.scenarios_included", 3,
			"header declares %d scenarios but the file has %d sections", h.Declared, len(v.file.Sections))
	}

	return category, ok
}

func (v *validator) checkBatch() {
	n := len(v.file.Sections)
	limit := v.cfg.Enrichment.MaxSections
	switch {
	case n == 0:
		v.add(RuleBatchSize, rules.Error, "", "sections", 0, "file contains no enrichment")
	case n > limit:
		extra := make([]string, 0, n-limit)
		for _, s := range v.file.Sections[limit:] {
			extra = append(extra, s.ID)
		}
		v.add(RuleBatchSize, rules.Error, "", "sections", v.file.Sections[limit].Line,
			"file has %d sections, %d over the limit of %d: %s", n, n-limit, limit, strings.Join(extra, ", "))
	}
}

func (v *validator) checkCategoryLock(category model.UnitCategory) {
	prefix := category.Prefix()
	for i, s := range v.file.Sections {
		if !strings.HasPrefix(strings.ToLower(s.ID), prefix) {
			v.add(RuleCategoryLock, rules.Error, s.ID, sectionField(i), s.Line,
				"identifier %q does not belong to category %s", s.ID, category)
		}
	}
}

func (v *validator) checkSections() {
	seen := make(map[string]int, len(v.file.Sections))
	for i, s := range v.file.Sections {
		if first, dup := seen[s.ID]; dup {
			v.add(RuleBlock, rules.Error, s.ID, sectionField(i), s.Line,
				"identifier %q already has a section at %s", s.ID, sectionField(first))
			continue
		}
		seen[s.ID] = i

		unit, ok := v.corpus.Unit(s.ID)
		if !ok {
			v.add(RuleUnknownUnit, rules.Error, s.ID, sectionField(i), s.Line, "identifier %q is not in the corpus", s.ID)
		}
		if s.Block == nil {
			continue
		}
		v.checkBlock(i, s, unit)
	}
}

// checkBlock applies the summary checks the corpus rules use, so a block
// that validates here will also pass once imported.
func (v *validator) checkBlock(i int, s Section, unit *model.ContentUnit) {
	prefix := sectionField(i) + ".block"
	summary := s.Block.Summary()

	v.res.Merge(rules.CheckSummaryBounds(RuleBlock, s.ID, prefix, summary, v.cfg.Bounds))
	v.res.Merge(rules.CheckBreakdownCategories(RuleBlock, s.ID, prefix, summary))
	v.res.Merge(rules.ScanTerminology(RuleBlock, s.ID, rules.SummaryText(prefix, summary), v.cfg.Terminology))

	if len(summary.CategoryBreakdown) == 0 {
		v.add(RuleBlock, rules.Error, s.ID, prefix+".category_breakdown", s.BlockLine, "block has no category breakdown")
	}
	if len(summary.KeyPatterns) == 0 {
		v.add(RuleBlock, rules.Error, s.ID, prefix+".key_patterns", s.BlockLine, "block has no key patterns")
	}
	if strings.TrimSpace(summary.OverallInsight) == "" {
		v.add(RuleBlock, rules.Error, s.ID, prefix+".overall_insight", s.BlockLine, "block has no overall insight")
	}
	for j, b := range summary.CategoryBreakdown {
		if b.Count != len(b.Examples) {
			v.add(RuleBlock, rules.Error, s.ID, fmt.Sprintf("%s.category_breakdown[%d].count", prefix, j), s.BlockLine,
				"breakdown %q declares count %d but lists %d examples", b.Category, b.Count, len(b.Examples))
		}
	}

	if unit == nil {
		return
	}
	defined := make(map[string]bool, len(unit.ChunkFeedback))
	for _, id := range unit.ChunkIDs() {
		defined[id] = true
	}
	for _, ref := range summary.References(prefix) {
		if !defined[ref.ChunkID] {
			v.add(RuleBlock, rules.Error, s.ID, ref.Field, s.BlockLine,
				"chunk %q is not defined in %s chunk_feedback", ref.ChunkID, s.ID)
		}
	}
}

func sectionField(i int) string {
	return fmt.Sprintf("sections[%d]", i)
}
