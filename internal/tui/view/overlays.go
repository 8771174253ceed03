package view

import (
	"lumictl/internal/tui/design"
	"lumictl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	footer := design.SubtitleStyle.Render("Esc or h closes this help")
	content := lipgloss.JoinVertical(lipgloss.Center, title, body, "", footer)
	return design.CenteredOverlayContainerStyle.Render(content)
}

func placeOverlay(m *model.Model, overlay string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "))
}
