package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/scenariolint/internal/checkpoint"
	"github.com/pthm/scenariolint/internal/rules"
)

func sampleReport() *checkpoint.Report {
	return &checkpoint.Report{
		RunID:      "0f8c2a4e-5d7b-4c1e-9a3f-2b6d8e1c4a70",
		Checkpoint: "pre-merge",
		Rules:      []string{"count-consistency", "answer-naturalness"},
		General: rules.Result{
			Errors: []rules.Issue{{Rule: "unique-ids", Severity: rules.Error, Message: `identifier "social-1" is used by 2 units`, UnitID: "social-1", Field: "id"}},
		},
		Units: []checkpoint.UnitResult{
			{UnitID: "social-2", Topic: "Greeting", Result: rules.Result{
				Errors:   []rules.Issue{{Rule: "answer-naturalness", Severity: rules.Error, Message: `word "meet" is repeated`, Field: "answers[0].alternatives[0]", Kind: "structure", Context: "Nice to meet meet you."}},
				Warnings: []rules.Issue{{Rule: "answer-naturalness", Severity: rules.Warning, Message: "looks like a noun", Kind: "semantic"}},
			}},
			{UnitID: "social-3", Topic: "Clean"},
			{UnitID: "workplace-1", Topic: "Asking for help", Result: rules.Result{
				Warnings: []rules.Issue{{Rule: "content-bounds", Severity: rules.Warning, Message: "2 situations, expected 3", Field: "feedback[0].situations"}},
			}},
		},
	}
}

func TestComputeSummary(t *testing.T) {
	s := ComputeSummary(sampleReport())
	assert.Equal(t, 3, s.Units)
	assert.Equal(t, 2, s.UnitsWithFindings)
	assert.Equal(t, 2, s.Errors)
	assert.Equal(t, 2, s.Warnings)
	assert.Equal(t, map[string]int{"structure": 1, "semantic": 1}, s.ByKind)
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminalReporter(&buf, nil).Report(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "pre-merge run 0f8c2a4e")
	assert.Contains(t, out, "ERROR: id [unique-ids]")
	assert.Contains(t, out, "social-2  Greeting")
	assert.Contains(t, out, "ERROR: answers[0].alternatives[0] [answer-naturalness]")
	assert.Contains(t, out, "    > Nice to meet meet you.")
	assert.Contains(t, out, "WARN: feedback[0].situations [content-bounds]")
	assert.NotContains(t, out, "social-3", "units without findings are not listed")
	assert.Contains(t, out, "Found 2 errors, 2 warnings in 2 of 3 units (semantic 1, structure 1)")
	assert.Contains(t, out, "ERROR: pre-merge failed")

	// General findings come first, then units in corpus order.
	general := strings.Index(out, "General")
	social := strings.Index(out, "social-2  Greeting")
	workplace := strings.Index(out, "workplace-1")
	assert.True(t, general < social && social < workplace, "unexpected order:\n%s", out)
}

func TestTerminalReporter_Clean(t *testing.T) {
	var buf bytes.Buffer
	rep := &checkpoint.Report{RunID: "abc", Checkpoint: "post-generation", Units: []checkpoint.UnitResult{{UnitID: "social-1"}}}
	require.NoError(t, NewTerminalReporter(&buf, nil).Report(rep))
	assert.Contains(t, buf.String(), "OK: No issues found in 1 units")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	clean := &checkpoint.Report{RunID: "r2", Checkpoint: "post-generation"}
	require.NoError(t, NewJSONReporter(&buf).Report(clean, sampleReport()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.False(t, out.Valid)
	require.Len(t, out.Runs, 2)
	assert.True(t, out.Runs[0].Valid)
	assert.NotNil(t, out.Runs[0].Units)

	run := out.Runs[1]
	assert.Equal(t, "0f8c2a4e-5d7b-4c1e-9a3f-2b6d8e1c4a70", run.RunID)
	require.Len(t, run.General, 1)
	assert.Equal(t, "error", run.General[0].Severity)
	require.Len(t, run.Units, 3)
	assert.False(t, run.Units[0].Valid)
	assert.Equal(t, "structure", run.Units[0].Issues[0].Kind)
	assert.True(t, run.Units[1].Valid)
	assert.Empty(t, run.Units[1].Issues)
	assert.Equal(t, 2, run.Summary.Errors)
}
