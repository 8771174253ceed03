package components

import (
	"net/url"
	"strings"

	"lumictl/internal/tui/design"
	"lumictl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// RigHeader is the top bar: the mounted mode on the left, the rig it
// drives on the right.
type RigHeader struct {
	Title    string
	Mode     string
	ModeIcon string
	// Spinner is shown while the mode's activation is in flight.
	Spinner  string
	Failed   bool
	Endpoint string
	Dialect  string
	Debug    bool
	Width    int
}

// NewRigHeader creates a header for the rig at endpoint.
func NewRigHeader(title, endpoint, dialect string, width int) *RigHeader {
	return &RigHeader{Title: title, Endpoint: endpoint, Dialect: dialect, Width: width}
}

// WithMode names the mounted mode. Failed marks a rejected activation.
func (h *RigHeader) WithMode(icon, mode string, failed bool) *RigHeader {
	h.ModeIcon, h.Mode, h.Failed = icon, mode, failed
	return h
}

// WithSpinner shows the activation spinner next to the title.
func (h *RigHeader) WithSpinner(view string) *RigHeader {
	h.Spinner = view
	return h
}

// WithDebug tags the header while debug logging is on.
func (h *RigHeader) WithDebug(debug bool) *RigHeader {
	h.Debug = debug
	return h
}

// RigLabel is "dialect @ host" for the configured endpoint.
func (h *RigHeader) RigLabel() string {
	host := h.Endpoint
	if u, err := url.Parse(h.Endpoint); err == nil && u.Host != "" {
		host = u.Host
	}
	if host == "" {
		host = "no rig"
	}
	if h.Dialect == "" {
		return host
	}
	return h.Dialect + " @ " + host
}

func (h *RigHeader) left() string {
	parts := make([]string, 0, 4)
	if h.Spinner != "" {
		parts = append(parts, h.Spinner)
	}
	parts = append(parts, h.Title)

	mode := h.Mode
	if mode == "" {
		mode = "no mode"
	} else if h.ModeIcon != "" {
		mode = h.ModeIcon + " " + mode
	}
	if h.Failed {
		mode = design.TextErrorStyle.Render(mode + " ✗")
	}
	parts = append(parts, "›", mode)

	if h.Debug {
		parts = append(parts, design.SubtitleStyle.Render("[debug]"))
	}
	return strings.Join(parts, " ")
}

// Render draws the header. The rig label is dropped first when space runs out.
func (h *RigHeader) Render() string {
	left := h.left()
	right := design.SubtitleStyle.Render(h.RigLabel())
	available := h.Width - design.SpaceSM*2

	content := left
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	switch {
	case leftWidth+rightWidth+2 <= available:
		content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + right
	case leftWidth > available:
		content = utils.TruncateString(left, available)
	}

	return design.HeaderStyle.Copy().
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
