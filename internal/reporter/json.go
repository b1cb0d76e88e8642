package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/scenariolint/internal/checkpoint"
	"github.com/pthm/scenariolint/internal/rules"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Valid bool      `json:"valid"`
	Runs  []JSONRun `json:"runs"`
}

// JSONRun is one checkpoint report
type JSONRun struct {
	RunID      string      `json:"run_id"`
	Checkpoint string      `json:"checkpoint"`
	Rules      []string    `json:"rules,omitempty"`
	Valid      bool        `json:"valid"`
	DurationMS int64       `json:"duration_ms"`
	General    []JSONIssue `json:"general"`
	Units      []JSONUnit  `json:"units"`
	Summary    Summary     `json:"summary"`
}

// JSONUnit holds the findings for one unit
type JSONUnit struct {
	UnitID string      `json:"unit_id"`
	Topic  string      `json:"topic,omitempty"`
	Schema string      `json:"schema,omitempty"`
	Valid  bool        `json:"valid"`
	Issues []JSONIssue `json:"issues"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	UnitID   string `json:"unit_id,omitempty"`
	Field    string `json:"field,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Context  string `json:"context,omitempty"`
}

// Report outputs every report, including units without findings, as one
// JSON document
func (r *JSONReporter) Report(reports ...*checkpoint.Report) error {
	output := JSONOutput{Valid: true, Runs: make([]JSONRun, 0, len(reports))}

	for _, rep := range reports {
		run := JSONRun{
			RunID:      rep.RunID,
			Checkpoint: rep.Checkpoint,
			Rules:      rep.Rules,
			Valid:      rep.Valid(),
			DurationMS: rep.Duration.Milliseconds(),
			General:    jsonIssues(rep.General),
			Units:      make([]JSONUnit, 0, len(rep.Units)),
			Summary:    ComputeSummary(rep),
		}
		for _, u := range rep.Units {
			run.Units = append(run.Units, JSONUnit{
				UnitID: u.UnitID,
				Topic:  u.Topic,
				Schema: u.Schema,
				Valid:  u.Result.Valid(),
				Issues: jsonIssues(u.Result),
			})
		}
		output.Valid = output.Valid && run.Valid
		output.Runs = append(output.Runs, run)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func jsonIssues(res rules.Result) []JSONIssue {
	out := make([]JSONIssue, 0, len(res.Errors)+len(res.Warnings))
	for _, issue := range res.Issues() {
		out = append(out, JSONIssue{
			Rule:     issue.Rule,
			Severity: issue.Severity.String(),
			Message:  issue.Message,
			UnitID:   issue.UnitID,
			Field:    issue.Field,
			Kind:     issue.Kind,
			Context:  issue.Context,
		})
	}
	return out
}
