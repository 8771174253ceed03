package components

import (
	"strings"
	"testing"

	"lumictl/internal/lighting"
	"lumictl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSliderFill(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filled int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 5},
		{"full", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Slider{Channel: lighting.ChannelG, Value: tt.value, Width: 10}.Render()
			assert.Equal(t, tt.filled, strings.Count(out, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(out, "░"))
			assert.Contains(t, out, "G ")
		})
	}
}

func TestSliderFocusMarker(t *testing.T) {
	assert.True(t, strings.HasPrefix(Slider{Channel: lighting.ChannelR, Focused: true}.Render(), "▶ "))
	assert.True(t, strings.HasPrefix(Slider{Channel: lighting.ChannelR}.Render(), "  "))
}

func TestStatusBarPrefersMessage(t *testing.T) {
	bar := NewStatusBar(60).
		WithLeftText("route: off").
		WithRightText("h help").
		WithMessage("Rainbow active", model.StatusBarSuccess)
	out := bar.Render()
	assert.Contains(t, out, "Rainbow active")
	assert.NotContains(t, out, "route: off")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestStatusBarSides(t *testing.T) {
	out := NewStatusBar(60).WithLeftText("route: off").WithRightText("h help").Render()
	assert.Contains(t, out, "route: off")
	assert.Contains(t, out, "h help")
}

func TestRigHeaderShowsModeAndRig(t *testing.T) {
	out := NewRigHeader("lumictl", "http://rig.local:8000/graphql", "lumi", 100).
		WithMode("🌈", "Rainbow", false).
		Render()
	assert.Contains(t, out, "lumictl")
	assert.Contains(t, out, "Rainbow")
	assert.Contains(t, out, "lumi @ rig.local:8000")
}

func TestRigHeaderLabel(t *testing.T) {
	tests := []struct {
		endpoint string
		dialect  string
		want     string
	}{
		{"http://rig/graphql", "nested", "nested @ rig"},
		{"http://rig/graphql", "", "rig"},
		{"", "nested", "nested @ no rig"},
		{"rig-without-scheme", "lumi", "lumi @ rig-without-scheme"},
	}
	for _, tt := range tests {
		h := NewRigHeader("lumictl", tt.endpoint, tt.dialect, 80)
		assert.Equal(t, tt.want, h.RigLabel())
	}
}

func TestRigHeaderWithoutMode(t *testing.T) {
	out := NewRigHeader("lumictl", "http://rig/graphql", "nested", 80).WithDebug(true).Render()
	assert.Contains(t, out, "no mode")
	assert.Contains(t, out, "[debug]")
}

func TestRigHeaderDropsRigLabelWhenNarrow(t *testing.T) {
	out := NewRigHeader("lumictl", "http://a-very-long-rig-hostname.example/graphql", "nested", 30).
		WithMode("", "Manual Settings", false).
		Render()
	assert.Contains(t, out, "Manual")
	assert.NotContains(t, out, "example")
}
