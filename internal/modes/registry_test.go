package modes

import (
	"errors"
	"testing"

	"lumictl/internal/lighting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureDispatcher struct {
	requests []lighting.Request
}

func (c *captureDispatcher) Dispatch(req lighting.Request) {
	c.requests = append(c.requests, req)
}

type mapSeeds map[lighting.LightID]lighting.Color

func (m mapSeeds) Seed(light lighting.LightID) (lighting.Color, bool) {
	c, ok := m[light]
	return c, ok
}

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(DefaultEntries(nil)...)
	require.NoError(t, err)
	return r
}

func TestResolveKnownRoutes(t *testing.T) {
	r := defaultRegistry(t)

	tests := []struct {
		key   string
		title string
		mode  lighting.ModeName
	}{
		{KeyOff, "Lights Off", lighting.ModeOff},
		{KeyManual, "Manual Settings", lighting.ModeManual},
		{KeyPinkPulse, "Pink Pulse", lighting.ModePinkPulse},
		{KeyRainbow, "Rainbow", lighting.ModeRainbow},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, err := r.Resolve(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.title, e.Title)
			assert.Equal(t, tt.mode, e.Mode)
			assert.NotEmpty(t, e.Icon)
		})
	}
	assert.Equal(t, []string{KeyOff, KeyManual, KeyPinkPulse, KeyRainbow}, r.Keys())
}

func TestResolveUnknownRoute(t *testing.T) {
	r := defaultRegistry(t)

	_, err := r.Resolve("disco")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, lighting.ErrUnknownRoute))
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty key", []Entry{{Mode: lighting.ModeOff}}},
		{"slash in key", []Entry{{Key: "mode/off", Mode: lighting.ModeOff}}},
		{"no mode", []Entry{{Key: "off"}}},
		{"duplicate", []Entry{{Key: "off", Mode: lighting.ModeOff}, {Key: "off", Mode: lighting.ModeRainbow}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries...)
			assert.Error(t, err)
		})
	}
}

func TestTitleDefaultsToMode(t *testing.T) {
	r, err := NewRegistry(Entry{Key: "ctl", Mode: lighting.ModeController})
	require.NoError(t, err)
	e, err := r.Resolve("ctl")
	require.NoError(t, err)
	assert.Equal(t, "Controller", e.Title)
}

func TestEntriesReturnsCopy(t *testing.T) {
	r := defaultRegistry(t)
	entries := r.Entries()
	entries[0].Title = "changed"

	e, err := r.Resolve(KeyOff)
	require.NoError(t, err)
	assert.Equal(t, "Lights Off", e.Title)
}

func TestKeyFromPath(t *testing.T) {
	assert.Equal(t, "off", KeyFromPath("/mode/off"))
	assert.Equal(t, "manual", KeyFromPath("/manual"))
	assert.Equal(t, "rainbow", KeyFromPath("rainbow"))
	assert.Equal(t, "pinkpulse", KeyFromPath("/mode/pinkpulse/"))
}

func TestManualViewHasGesturePerLight(t *testing.T) {
	r := defaultRegistry(t)
	e, err := r.Resolve(KeyManual)
	require.NoError(t, err)

	d := &captureDispatcher{}
	v := e.NewView(d, mapSeeds{lighting.LightLeft: {G: 0.5}})
	require.Len(t, v.Gestures, 4)

	g, ok := v.Gesture(lighting.LightLeft)
	require.True(t, ok)
	assert.Equal(t, lighting.Color{G: 0.5}, g.Color())

	g, ok = v.Gesture(lighting.LightTop)
	require.True(t, ok)
	assert.Equal(t, lighting.Black, g.Color())

	_, ok = v.Gesture("light9")
	assert.False(t, ok)
	assert.Empty(t, d.requests, "mounting must not dispatch")
}

func TestViewLifecycle(t *testing.T) {
	r := defaultRegistry(t)
	e, err := r.Resolve(KeyManual)
	require.NoError(t, err)

	d := &captureDispatcher{}
	v := e.NewView(d, nil)
	v.Enter()
	v.Enter()
	require.Len(t, d.requests, 1)
	assert.Equal(t, lighting.ModeManual, d.requests[0].Mode)

	v.Exit()
	for _, g := range v.Gestures {
		assert.True(t, g.Detached())
	}
	assert.False(t, v.Activation.Active())
}
