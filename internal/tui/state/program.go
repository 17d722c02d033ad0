package state

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
