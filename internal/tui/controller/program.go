package controller

import (
	"lumictl/internal/tui/model"
	"lumictl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the dashboard program.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, nil
}
