package view

import (
	"fmt"

	"lumictl/internal/activation"
	"lumictl/internal/tui/components"
	"lumictl/internal/tui/design"
	"lumictl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state. It only reads
// the model.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return placeOverlay(m, renderHelpOverlay(m))
	case model.ModeLogOverlay:
		w := int(float64(m.Width) * 0.8)
		h := int(float64(m.Height) * 0.8)
		return placeOverlay(m, renderLogOverlay(m, w, h))
	}

	if m.Width == 0 || m.Height == 0 {
		return design.TextStyle.Render("Initializing... (waiting for window size)")
	}
	return renderDashboard(m)
}

func renderDashboard(m *model.Model) string {
	header := renderHeader(m)
	status := renderStatusBar(m)
	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < design.MinPanelHeight {
		bodyHeight = design.MinPanelHeight
	}

	drawer := renderDrawer(m, bodyHeight)
	panelWidth := m.Width - lipgloss.Width(drawer)
	panel := renderModePanel(m, panelWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, drawer, panel)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func renderHeader(m *model.Model) string {
	h := components.NewRigHeader(SafeIcon(IconLightbulb)+"lumictl", m.Endpoint, m.Dialect, m.Width).
		WithDebug(m.DebugMode)
	if v := m.Shell.Current(); v != nil {
		h = h.WithMode(v.Entry.Icon, v.Entry.Title, v.Activation.LastError() != nil)
		if v.Activation.State() == activation.StateActivating {
			h = h.WithSpinner(m.Spinner.View())
		}
	}
	return h.Render()
}

func renderDrawer(m *model.Model, height int) string {
	style := design.PanelStyle
	if m.Focus == model.FocusDrawer {
		style = design.PanelFocusedStyle
	}
	return style.Copy().
		Width(model.DrawerWidth - style.GetHorizontalFrameSize()).
		Height(height - style.GetVerticalFrameSize()).
		Render(m.Drawer.View())
}

func renderStatusBar(m *model.Model) string {
	route := m.Shell.CurrentKey()
	if m.UnknownRoute != "" {
		route = m.UnknownRoute + " (unknown)"
	}
	if route == "" {
		route = "-"
	}
	right := "h help • q quit"
	if light, ok := m.FocusedLightID(); ok && m.Focus == model.FocusControls {
		right = fmt.Sprintf("%s/%s • %s", light, m.FocusedChannel, right)
	}
	return components.NewStatusBar(m.Width).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithLeftText("route: " + route).
		WithRightText(right).
		Render()
}
