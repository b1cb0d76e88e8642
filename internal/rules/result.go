package rules

import "fmt"

// Result carries a checker's errors and warnings. The zero value is a
// valid, empty result.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the result has no errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Empty reports whether the result has no findings at all.
func (r Result) Empty() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Add files an issue under its severity.
func (r *Result) Add(issue Issue) {
	if issue.Severity == Error {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Merge appends other's findings to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Issues returns errors followed by warnings.
func (r Result) Issues() []Issue {
	out := make([]Issue, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Aggregate merges results in order: valid only if all are valid.
func Aggregate(results ...Result) Result {
	var agg Result
	for _, r := range results {
		agg.Merge(r)
	}
	return agg
}

// reporter binds a rule name and unit id so checks can file issues tersely.
type reporter struct {
	rule   string
	unitID string
	result Result
}

func newReporter(rule string, ctx *UnitContext) *reporter {
	return &reporter{rule: rule, unitID: ctx.Unit.ID}
}

func (p *reporter) errorf(field, format string, args ...any) {
	p.add(Error, field, "", format, args...)
}

func (p *reporter) warnf(field, format string, args ...any) {
	p.add(Warning, field, "", format, args...)
}

func (p *reporter) add(sev Severity, field, kind, format string, args ...any) {
	p.result.Add(Issue{
		Rule:     p.rule,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		UnitID:   p.unitID,
		Field:    field,
		Kind:     kind,
	})
}
