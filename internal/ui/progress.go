package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display.
// All methods are safe on a nil controller, which is what StartProgress
// returns when progress is off.
type ProgressController struct {
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the progress display on the error writer if the
// UI allows it. Returns nil otherwise.
func (ui *UI) StartProgress() *ProgressController {
	if !ui.ShowProgress() {
		return nil
	}

	p := tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter))
	ctrl := &ProgressController{program: p, done: make(chan struct{})}

	go func() {
		// The display is cosmetic; a failed program only loses the animation.
		_, _ = p.Run()
		close(ctrl.done)
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// Start begins the unit counter for a checkpoint.
func (pc *ProgressController) Start(checkpoint string, units int) {
	if pc != nil {
		pc.program.Send(CheckpointMsg{Name: checkpoint, Units: units})
	}
}

// UnitDone advances the unit counter. Safe for concurrent use.
func (pc *ProgressController) UnitDone() {
	if pc != nil {
		pc.program.Send(UnitDoneMsg{})
	}
}

// Done stops the display and waits for it to clear.
func (pc *ProgressController) Done(err error) {
	if pc != nil {
		pc.program.Send(DoneMsg{Err: err})
		<-pc.done
	}
}
