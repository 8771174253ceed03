package view

import (
	"fmt"
	"strings"

	"lumictl/internal/activation"
	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/tui/components"
	"lumictl/internal/tui/design"
	"lumictl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderModePanel draws the mounted mode view, or the fallback panel when
// the last navigation named an unknown route.
func renderModePanel(m *model.Model, width, height int) string {
	style := design.PanelStyle
	if m.Focus == model.FocusControls {
		style = design.PanelFocusedStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < design.MinPanelWidth {
		inner = design.MinPanelWidth
	}

	var content string
	current := m.Shell.Current()
	switch {
	case m.UnknownRoute != "" || current == nil:
		content = renderFallback(m)
	case current.Entry.Manual():
		content = lipgloss.JoinVertical(lipgloss.Left,
			renderModeTitle(m, current),
			renderManualControls(m, current, inner),
		)
	default:
		content = lipgloss.JoinVertical(lipgloss.Left,
			renderModeTitle(m, current),
			design.SubtitleStyle.Render("The rig runs this program on its own."),
		)
	}

	h := height - style.GetVerticalFrameSize()
	if h < design.MinPanelHeight {
		h = design.MinPanelHeight
	}
	return style.Copy().Width(inner).Height(h).Render(content)
}

func renderFallback(m *model.Model) string {
	title := design.TextWarningStyle.Bold(true).Render(SafeIcon(IconQuestion) + "Mode not found")
	lines := []string{title, ""}
	if m.UnknownRoute != "" {
		lines = append(lines, fmt.Sprintf("No mode is registered for %q.", m.UnknownRoute))
	} else {
		lines = append(lines, "No mode is open.")
	}
	lines = append(lines, design.SubtitleStyle.Render("Pick one of: "+strings.Join(m.Shell.Registry().Keys(), ", ")))
	return strings.Join(lines, "\n")
}

func renderModeTitle(m *model.Model, v *modes.View) string {
	title := v.Entry.Title
	if v.Entry.Icon != "" {
		title = SafeIcon(v.Entry.Icon) + title
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		design.TitleStyle.Render(title),
		renderActivation(m, v.Activation),
	)
}

func renderActivation(m *model.Model, a *activation.Controller) string {
	var line string
	switch a.State() {
	case activation.StateActivating:
		line = m.Spinner.View() + " Activating " + string(a.Mode()) + "…"
	case activation.StateActive:
		if err := a.LastError(); err != nil {
			line = design.TextErrorStyle.Render(SafeIcon(IconCross) + "Activation failed: " + err.Error())
		} else {
			line = design.TextSuccessStyle.Render(SafeIcon(IconCheck) + string(a.Mode()) + " active")
		}
	default:
		line = design.SubtitleStyle.Render(string(a.Mode()) + " inactive")
	}
	return line
}

// renderManualControls lays the light cards out left to right, wrapping
// onto new rows when the panel is narrow.
func renderManualControls(m *model.Model, v *modes.View, width int) string {
	lights := v.Entry.Lights
	cards := make([]string, 0, len(lights))
	for i, light := range lights {
		g, ok := v.Gesture(light)
		if !ok {
			continue
		}
		focused := m.Focus == model.FocusControls && i == m.FocusedLight
		cards = append(cards, renderLightCard(m, light, g.Color(), g.Dirty(), focused))
	}
	if len(cards) == 0 {
		return ""
	}

	cardWidth := lipgloss.Width(cards[0])
	perRow := width / cardWidth
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderLightCard(m *model.Model, light lighting.LightID, c lighting.Color, dirty, focused bool) string {
	style := design.LightCardStyle
	if focused {
		style = design.LightCardFocusedStyle
	}

	name := string(light)
	if dirty {
		name += " *"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		design.Swatch(c, 4, 1), " ", lipgloss.NewStyle().Bold(true).Render(name),
		"  ", design.SubtitleStyle.Render(c.Hex()),
	)

	lines := []string{header}
	for _, ch := range lighting.Channels() {
		s := components.Slider{
			Channel: ch,
			Value:   c.Get(ch),
			Width:   design.SliderWidth,
			Focused: focused && ch == m.FocusedChannel,
		}
		lines = append(lines, s.Render())
	}
	return style.Render(strings.Join(lines, "\n"))
}
