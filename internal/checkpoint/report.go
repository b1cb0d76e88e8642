package checkpoint

import (
	"time"

	"github.com/pthm/scenariolint/internal/rules"
)

// UnitResult is the aggregated result of every rule for one unit.
type UnitResult struct {
	UnitID string
	Topic  string
	// Schema is the unit's generation as classified for this run.
	Schema string
	Result rules.Result
}

// Report is the outcome of one checkpoint run or one enrichment
// validation. Units are in corpus order.
type Report struct {
	RunID      string
	Checkpoint string
	Rules      []string
	Units      []UnitResult
	// General holds findings that belong to no single unit: duplicate
	// identifiers, enrichment header problems, boundary failures.
	General  rules.Result
	Duration time.Duration
}

// Valid reports whether no error was found anywhere.
func (r *Report) Valid() bool {
	if !r.General.Valid() {
		return false
	}
	for _, u := range r.Units {
		if !u.Result.Valid() {
			return false
		}
	}
	return true
}

// Aggregate merges general findings and every unit result, in that order.
func (r *Report) Aggregate() rules.Result {
	results := make([]rules.Result, 0, len(r.Units)+1)
	results = append(results, r.General)
	for _, u := range r.Units {
		results = append(results, u.Result)
	}
	return rules.Aggregate(results...)
}

// ExitCode is 0 when the report is valid and 1 otherwise. Warnings never
// affect it.
func (r *Report) ExitCode() int {
	if r.Valid() {
		return 0
	}
	return 1
}
