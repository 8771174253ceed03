package view

import (
	"strings"

	"lumictl/internal/tui/design"
	"lumictl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.Copy().
		Width(width - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(height - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
// The viewport handles overflow, so lines are never truncated here.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, raw := range lines {
		out[i] = styleLogLine(raw)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
