package controller

import (
	"fmt"
	"time"

	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// navigateTo switches the shell to route. Re-selecting the current route is
// a no-op; an unknown route keeps the mounted view and shows the fallback
// panel message.
func navigateTo(m *model.Model, route string) (*model.Model, tea.Cmd) {
	key := modes.KeyFromPath(route)
	if key == m.Shell.CurrentKey() && m.Shell.Current() != nil {
		m.UnknownRoute = ""
		return m, nil
	}

	view, err := m.Shell.Navigate(key)
	if err != nil {
		m.UnknownRoute = key
		return m, m.SetStatusMessage(fmt.Sprintf("Unknown route %q", key), model.StatusBarWarning, 3*time.Second)
	}

	m.UnknownRoute = ""
	m.FocusedLight = 0
	m.FocusedChannel = lighting.ChannelR
	m.PendingGestures = make(map[lighting.LightID]uint64)
	model.SelectDrawerKey(&m.Drawer, key)
	if !view.Entry.Manual() {
		m.Focus = model.FocusDrawer
	}
	return m, nil
}
