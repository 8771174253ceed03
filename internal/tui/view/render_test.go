package view

import (
	"errors"
	"testing"

	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/shell"
	"lumictl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDispatcher struct{ n int }

func (c *countingDispatcher) Dispatch(lighting.Request) { c.n++ }

func newViewModel(t *testing.T, route string) (*model.Model, *countingDispatcher) {
	t.Helper()
	reg, err := modes.NewRegistry(modes.DefaultEntries(nil)...)
	require.NoError(t, err)
	d := &countingDispatcher{}
	m, err := model.InitializeModel(model.TUIConfig{
		Shell:        shell.New(reg, d, nil),
		InitialRoute: route,
		Endpoint:     "http://rig.local/graphql",
		Dialect:      "nested",
	}, nil)
	require.NoError(t, err)
	m.Width, m.Height = 140, 40
	return m, d
}

func TestRenderDoesNotDispatch(t *testing.T) {
	m, d := newViewModel(t, modes.KeyManual)
	before := d.n
	for i := 0; i < 5; i++ {
		_ = Render(m)
	}
	assert.Equal(t, before, d.n)
}

func TestRenderManualShowsEveryLight(t *testing.T) {
	m, _ := newViewModel(t, modes.KeyManual)
	m.Focus = model.FocusControls

	out := Render(m)
	for _, light := range lighting.DefaultLights() {
		assert.Contains(t, out, string(light))
	}
	assert.Contains(t, out, "Manual Settings")
	assert.Contains(t, out, "#000000")
	assert.Contains(t, out, "nested @ rig.local")
}

func TestRenderActivationStates(t *testing.T) {
	m, _ := newViewModel(t, modes.KeyRainbow)
	assert.Contains(t, Render(m), "Activating")

	v := m.Shell.Current()
	v.Activation.Resolve(v.Activation.Generation(), errors.New("rig offline"))
	assert.Contains(t, Render(m), "rig offline")
}

func TestRenderFallbackForUnknownRoute(t *testing.T) {
	m, _ := newViewModel(t, "disco")
	out := Render(m)
	assert.Contains(t, out, "Mode not found")
	assert.Contains(t, out, "disco")
}

func TestRenderOverlays(t *testing.T) {
	m, _ := newViewModel(t, modes.KeyOff)

	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, Render(m), "KEYBOARD SHORTCUTS")

	m.CurrentAppMode = model.ModeLogOverlay
	m.LogViewport.Width, m.LogViewport.Height = 80, 10
	m.LogViewport.SetContent(PrepareLogContent([]string{"12:00:00.000 [INFO] [Shell] hello"}, 80))
	assert.Contains(t, Render(m), "Activity Log")

	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "bye"
	assert.Contains(t, Render(m), "bye")
}

func TestRenderWaitsForWindowSize(t *testing.T) {
	m, _ := newViewModel(t, modes.KeyOff)
	m.Width, m.Height = 0, 0
	assert.Contains(t, Render(m), "waiting for window size")
}

func TestPrepareLogContentKeepsLines(t *testing.T) {
	lines := []string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d [INFO] w"}
	out := PrepareLogContent(lines, 40)
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
}
