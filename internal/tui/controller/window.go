package controller

import (
	"lumictl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight    = 1
	statusBarHeight = 1
)

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the drawer and the log overlay viewport.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	bodyHeight := m.Height - headerHeight - statusBarHeight - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.Drawer.SetSize(model.DrawerWidth, bodyHeight)

	m.LogViewport.Width = m.Width * 8 / 10
	m.LogViewport.Height = m.Height * 7 / 10
	if m.LogViewport.Height > 4 {
		m.LogViewport.Height -= 4
	}
	m.Help.Width = m.Width
	return m, nil
}
