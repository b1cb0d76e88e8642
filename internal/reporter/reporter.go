// Package reporter renders checkpoint reports for people and machines.
package reporter

import (
	"sort"

	"github.com/pthm/scenariolint/internal/checkpoint"
)

// Reporter defines the interface for outputting checkpoint results
type Reporter interface {
	// Report outputs one or more reports, in run order
	Report(reports ...*checkpoint.Report) error
}

// Summary holds summary statistics for one report
type Summary struct {
	Units             int            `json:"units"`
	UnitsWithFindings int            `json:"units_with_findings"`
	Errors            int            `json:"errors"`
	Warnings          int            `json:"warnings"`
	ByKind            map[string]int `json:"by_kind,omitempty"`
}

// ComputeSummary computes summary statistics from a report
func ComputeSummary(r *checkpoint.Report) Summary {
	s := Summary{
		Units:  len(r.Units),
		ByKind: make(map[string]int),
	}

	for _, u := range r.Units {
		if !u.Result.Empty() {
			s.UnitsWithFindings++
		}
	}

	agg := r.Aggregate()
	s.Errors = len(agg.Errors)
	s.Warnings = len(agg.Warnings)
	for _, issue := range agg.Issues() {
		if issue.Kind != "" {
			s.ByKind[issue.Kind]++
		}
	}

	return s
}

// kinds returns the summary's kinds in a stable order.
func (s Summary) kinds() []string {
	out := make([]string, 0, len(s.ByKind))
	for k := range s.ByKind {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
