package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/quant/internal/tracker"
)

// RunWidgetTUI starts the interactive tracking widget
func RunWidgetTUI(tr *tracker.Tracker, hook CommandHook) error {
	model := NewWidgetModel(tr, hook)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
