package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/scenariolint/internal/checkpoint"
	"github.com/pthm/scenariolint/internal/rules"
	"github.com/pthm/scenariolint/internal/ui"
)

const maxContext = 200

// TerminalReporter outputs results to the terminal, grouped by unit
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// Report prints each report: general findings first, then units with
// findings in corpus order, then a summary block.
func (r *TerminalReporter) Report(reports ...*checkpoint.Report) error {
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.printReport(rep)
	}
	return nil
}

func (r *TerminalReporter) printReport(rep *checkpoint.Report) {
	s := r.styles
	fmt.Fprintf(r.w, "%s %s\n", s.Header.Render(rep.Checkpoint), s.Subheader.Render("run "+shortID(rep.RunID)))
	if len(rep.Rules) > 0 {
		fmt.Fprintln(r.w, s.Subheader.Render("  rules: "+strings.Join(rep.Rules, ", ")))
	}

	if !rep.General.Empty() {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Unit.Render("General"))
		for _, issue := range rep.General.Issues() {
			r.printIssue(issue)
		}
	}

	for _, u := range rep.Units {
		if u.Result.Empty() {
			continue
		}
		fmt.Fprintln(r.w)
		header := s.Unit.Render(u.UnitID)
		if u.Topic != "" {
			header += "  " + s.Topic.Render(u.Topic)
		}
		fmt.Fprintln(r.w, header)
		for _, issue := range u.Result.Issues() {
			r.printIssue(issue)
		}
	}

	r.printSummary(rep)
}

func (r *TerminalReporter) printIssue(issue rules.Issue) {
	s := r.styles
	icon := s.Warning.Render(s.IconWarning)
	if issue.Severity == rules.Error {
		icon = s.Error.Render(s.IconError)
	}

	fmt.Fprintf(r.w, "  %s ", icon)
	if issue.Field != "" {
		fmt.Fprintf(r.w, "%s ", s.Field.Render(issue.Field))
	}
	fmt.Fprintln(r.w, s.Rule.Render("["+issue.Rule+"]"))
	fmt.Fprintf(r.w, "    %s\n", issue.Message)

	if issue.Context != "" && len(issue.Context) < maxContext {
		for _, line := range strings.Split(issue.Context, "\n") {
			fmt.Fprintln(r.w, s.Subheader.Render("    > "+line))
		}
	}
}

func (r *TerminalReporter) printSummary(rep *checkpoint.Report) {
	s := r.styles
	sum := ComputeSummary(rep)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	if sum.Errors == 0 && sum.Warnings == 0 {
		fmt.Fprintf(r.w, "%s No issues found in %d units\n", s.Success.Render(s.IconSuccess), sum.Units)
		return
	}

	parts := []string{
		s.Error.Render(fmt.Sprintf("%d errors", sum.Errors)),
		s.Warning.Render(fmt.Sprintf("%d warnings", sum.Warnings)),
	}
	fmt.Fprintf(r.w, "Found %s in %d of %d units", strings.Join(parts, ", "), sum.UnitsWithFindings, sum.Units)
	if kinds := sum.kinds(); len(kinds) > 0 {
		byKind := make([]string, len(kinds))
		for i, k := range kinds {
			byKind[i] = fmt.Sprintf("%s %d", k, sum.ByKind[k])
		}
		fmt.Fprintf(r.w, " (%s)", strings.Join(byKind, ", "))
	}
	fmt.Fprintln(r.w)

	if rep.Valid() {
		fmt.Fprintf(r.w, "%s %s passed\n", s.Success.Render(s.IconSuccess), rep.Checkpoint)
	} else {
		fmt.Fprintf(r.w, "%s %s failed\n", s.Error.Render(s.IconError), rep.Checkpoint)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
