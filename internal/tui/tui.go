package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/pomo/internal/session"
)

// RunTimerTUI runs the interactive timer until the user quits, then stops the controller
func RunTimerTUI(ctrl *session.Controller) error {
	model := NewTimerModel(ctrl)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	// Stop ticking before reporting; the countdown is not kept across runs
	ctrl.Close()
	if err != nil {
		return err
	}

	stats := ctrl.Snapshot().Stats
	fmt.Printf("🍅 Today: %d pomodoros, %d minutes focused\n", stats.Pomodoros, stats.Minutes)
	return nil
}
