package components

import (
	"math"
	"strings"

	"lumictl/internal/lighting"
	"lumictl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Slider renders one color channel as a horizontal bar.
type Slider struct {
	Channel lighting.Channel
	Value   float64
	Width   int
	Focused bool
}

// Render returns "R ███████░░░░  42%".
func (s Slider) Render() string {
	width := s.Width
	if width < 4 {
		width = 4
	}
	filled := int(math.Round(s.Value * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	fill := lipgloss.NewStyle().Foreground(design.ChannelColors[s.Channel])
	bar := fill.Render(strings.Repeat("█", filled)) +
		design.TextSecondaryStyle.Render(strings.Repeat("░", width-filled))

	label := s.Channel.String()
	cursor := "  "
	if s.Focused {
		cursor = "▶ "
		label = lipgloss.NewStyle().Bold(true).Foreground(design.ColorPrimary).Render(label)
	}
	return cursor + label + " " + bar + " " + design.PercentLabel(s.Value)
}
