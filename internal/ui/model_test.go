package ui

import (
	"bytes"
	"strings"
	"testing"
)

func update(m Model, msgs ...any) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelStages(t *testing.T) {
	m := NewModel()
	if !strings.Contains(m.View(), "Loading corpus") {
		t.Errorf("initial view = %q", m.View())
	}

	m = update(m, StageMsg(StageParseEnrichment))
	if !strings.Contains(m.View(), "Parsing enrichment file") {
		t.Errorf("enrichment view = %q", m.View())
	}

	m = update(m, CheckpointMsg{Name: "pre-merge", Units: 3}, UnitDoneMsg{}, UnitDoneMsg{})
	if !strings.Contains(m.View(), "Running pre-merge (2/3 units)") {
		t.Errorf("checks view = %q", m.View())
	}
}

func TestModelCounterResetsPerCheckpoint(t *testing.T) {
	m := update(NewModel(),
		CheckpointMsg{Name: "post-generation", Units: 2},
		UnitDoneMsg{}, UnitDoneMsg{}, UnitDoneMsg{},
	)
	if m.unitsDone != 2 {
		t.Errorf("unitsDone = %d, want counter capped at 2", m.unitsDone)
	}

	m = update(m, CheckpointMsg{Name: "post-blank-insertion", Units: 2})
	if m.unitsDone != 0 || m.checkpoint != "post-blank-insertion" {
		t.Errorf("counter not reset: %d %s", m.unitsDone, m.checkpoint)
	}
}

func TestModelDoneClearsView(t *testing.T) {
	m := update(NewModel(), DoneMsg{})
	if m.View() != "" {
		t.Errorf("view after done = %q", m.View())
	}
}

func TestNewDetectsMode(t *testing.T) {
	var out, errOut bytes.Buffer

	u := New(&out, &errOut, FormatTerminal)
	if u.Mode != OutputModePlain || u.ShowProgress() {
		t.Errorf("buffer output should be plain without progress, got mode %d", u.Mode)
	}
	if u.Styles.IconError != "ERROR:" {
		t.Errorf("plain icons expected, got %q", u.Styles.IconError)
	}

	if !New(&out, &errOut, FormatJSON).IsJSON() {
		t.Error("json format should select JSON mode")
	}

	var pc *ProgressController
	pc.Start("post-generation", 1)
	pc.UnitDone()
	pc.Done(nil)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"", "terminal", "json"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	if err := ValidateFormat("xml"); err == nil {
		t.Error("ValidateFormat(xml) should fail")
	}
}

func TestPlainStyles(t *testing.T) {
	s := NewStyles(false)
	if s.Enabled() {
		t.Error("plain styles should report disabled")
	}
	if got := s.Error.Render("dialogue"); got != "dialogue" {
		t.Errorf("plain Error.Render = %q, want text unchanged", got)
	}
	if s.IconError != "ERROR:" || s.IconWarning != "WARN:" || s.IconSuccess != "OK:" {
		t.Errorf("plain icons = %q %q %q", s.IconError, s.IconWarning, s.IconSuccess)
	}
	if !NewStyles(true).Enabled() {
		t.Error("styled output should report enabled")
	}
}
