package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Unit      lipgloss.Style
	Topic     lipgloss.Style
	Field     lipgloss.Style
	Rule      lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconWarning string
	IconSuccess string
}

// NewStyles builds the style set. Disabled styles render text unchanged
// and use ASCII severity markers, for pipes and CI logs.
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	// fg returns a foreground style, or a no-op style when disabled.
	fg := func(color string) lipgloss.Style {
		if !enabled {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	s.Error = fg("9")    // red
	s.Warning = fg("11") // yellow
	s.Success = fg("10") // green
	s.Header = fg("15")
	s.Subheader = fg("8")
	s.Topic = fg("8")
	s.Field = fg("14") // cyan
	s.Rule = fg("8")
	s.Separator = fg("8")
	s.Unit = lipgloss.NewStyle()

	if !enabled {
		s.IconError, s.IconWarning, s.IconSuccess = "ERROR:", "WARN:", "OK:"
		return s
	}

	s.Header = s.Header.Bold(true)
	s.Unit = s.Unit.Bold(true)
	s.Topic = s.Topic.Italic(true)
	s.IconError, s.IconWarning, s.IconSuccess = "✗", "⚠", "✓"
	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
