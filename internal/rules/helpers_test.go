package rules

import (
	"strings"
	"testing"

	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/model"
)

func check(rule Rule, u model.ContentUnit) Result {
	return rule.Check(NewUnitContext(&u, config.Default()))
}

// wantClean fails the test if the result has any finding.
func wantClean(t *testing.T, res Result) {
	t.Helper()
	for _, issue := range res.Issues() {
		t.Errorf("unexpected %s [%s] %s: %s", issue.Severity, issue.Rule, issue.Field, issue.Message)
	}
}

// findIssue returns the first issue whose message contains substr.
func findIssue(issues []Issue, substr string) *Issue {
	for i := range issues {
		if strings.Contains(issues[i].Message, substr) {
			return &issues[i]
		}
	}
	return nil
}
