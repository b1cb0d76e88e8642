package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage is the step currently shown by the progress display.
type Stage int

const (
	StageLoadCorpus Stage = iota
	StageParseEnrichment
	StageRunChecks
	StageDone
)

// Message types for updating the model
type (
	StageMsg      Stage
	CheckpointMsg struct {
		Name  string
		Units int
	}
	UnitDoneMsg struct{}
	DoneMsg     struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage      Stage
	spinner    spinner.Model
	progress   progress.Model
	checkpoint string
	units      int
	unitsDone  int
	width      int
	quitting   bool
	err        error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		stage:    StageLoadCorpus,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-4, 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case CheckpointMsg:
		// Each checkpoint of a pipeline restarts the counter.
		m.stage = StageRunChecks
		m.checkpoint = msg.Name
		m.units = msg.Units
		m.unitsDone = 0
		return m, nil

	case UnitDoneMsg:
		if m.unitsDone < m.units {
			m.unitsDone++
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageLoadCorpus:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Loading corpus...")

	case StageParseEnrichment:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Parsing enrichment file...")

	case StageRunChecks:
		if m.units > 0 {
			sb.WriteString(m.progress.ViewAs(float64(m.unitsDone) / float64(m.units)))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(fmt.Sprintf(" Running %s (%d/%d units)", m.checkpoint, m.unitsDone, m.units))
	}

	return sb.String()
}
