// Package ui decides how output is rendered: styled and animated on a
// terminal, plain when piped, raw JSON when asked.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted
type OutputMode int

const (
	// OutputModeInteractive enables colors, icons and the progress display
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress (for piped output)
	OutputModePlain
	// OutputModeJSON outputs raw JSON only
	OutputModeJSON
)

// Output formats accepted by --format.
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// UI bundles the writers, the detected mode and the styles for it.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles

	// NoProgress suppresses the progress display even on a terminal.
	NoProgress bool
}

// ValidateFormat rejects unknown --format values.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatTerminal, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatTerminal, FormatJSON)
}

// New creates a UI for the given writers. The mode is interactive only
// when w is a terminal and the format is not JSON.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	if format == FormatJSON {
		return OutputModeJSON
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return OutputModeInteractive
	}
	return OutputModePlain
}

// IsInteractive returns true if the output is interactive (TTY)
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON returns true if JSON output mode is enabled
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}

// ShowProgress reports whether the progress display should run.
func (ui *UI) ShowProgress() bool {
	return ui.IsInteractive() && !ui.NoProgress
}
