package model

import (
	"testing"

	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShell(t *testing.T, d lighting.Dispatcher) *shell.Shell {
	t.Helper()
	reg, err := modes.NewRegistry(modes.DefaultEntries(nil)...)
	require.NoError(t, err)
	return shell.New(reg, d, nil)
}

func TestInitializeModelRequiresShell(t *testing.T) {
	_, err := InitializeModel(TUIConfig{}, nil)
	assert.Error(t, err)
}

func TestInitializeModelDefaults(t *testing.T) {
	var reqs []lighting.Request
	d := lighting.DispatcherFunc(func(r lighting.Request) { reqs = append(reqs, r) })

	m, err := InitializeModel(TUIConfig{Shell: newShell(t, d), InitialRoute: modes.KeyRainbow}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultGestureIdle, m.GestureIdle)
	assert.Equal(t, DefaultStep, m.Step)
	assert.Equal(t, ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, FocusDrawer, m.Focus)
	assert.Empty(t, m.UnknownRoute)
	require.Len(t, reqs, 1)
	assert.Equal(t, lighting.ModeRainbow, reqs[0].Mode)

	key, ok := SelectedDrawerKey(m.Drawer)
	require.True(t, ok)
	assert.Equal(t, modes.KeyRainbow, key)
	assert.Len(t, m.Drawer.Items(), 4)
}

func TestInitializeModelUnknownRoute(t *testing.T) {
	var n int
	d := lighting.DispatcherFunc(func(lighting.Request) { n++ })

	m, err := InitializeModel(TUIConfig{Shell: newShell(t, d), InitialRoute: "strobe"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "strobe", m.UnknownRoute)
	assert.Nil(t, m.Shell.Current())
	assert.Zero(t, n)
}

func TestFocusedLightID(t *testing.T) {
	d := lighting.DispatcherFunc(func(lighting.Request) {})
	m, err := InitializeModel(TUIConfig{Shell: newShell(t, d), InitialRoute: modes.KeyOff}, nil)
	require.NoError(t, err)

	_, ok := m.FocusedLightID()
	assert.False(t, ok)

	_, err = m.Shell.Navigate(modes.KeyManual)
	require.NoError(t, err)
	m.FocusedLight = 99
	light, ok := m.FocusedLightID()
	require.True(t, ok)
	assert.Equal(t, lighting.LightTop, light)
}

func TestActivityLogIsBounded(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "HelpOverlay", ModeHelpOverlay.String())
	assert.Equal(t, "Unknown", AppMode(42).String())
}
