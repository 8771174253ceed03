package app

import (
	"testing"

	"lumictl/internal/config"
	"lumictl/internal/lighting"
	"lumictl/internal/modes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryDefaults(t *testing.T) {
	cfg := config.GetDefaultConfig()
	reg, mutations, err := BuildRegistry(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{modes.KeyOff, modes.KeyManual, modes.KeyPinkPulse, modes.KeyRainbow}, reg.Keys())
	assert.Empty(t, mutations)
}

func TestBuildRegistryMergesConfiguredModes(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Lights = []string{"front", "back"}
	cfg.Modes = []config.ModeDefinition{
		{Route: "rainbow", Mode: "Rainbow", Title: "Slow Rainbow", Mutation: "slowRainbow"},
		{Route: "pinkpulse", Disabled: true},
		{Route: "/mode/controller", Mode: "Controller", Title: "Game Pad"},
		{Route: "booth", Mode: "Manual", Title: "Booth", Manual: true},
	}

	reg, mutations, err := BuildRegistry(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"off", "manual", "rainbow", "controller", "booth"}, reg.Keys())

	rainbow, err := reg.Resolve("rainbow")
	require.NoError(t, err)
	assert.Equal(t, "Slow Rainbow", rainbow.Title)
	assert.Equal(t, "🌈", rainbow.Icon)

	booth, err := reg.Resolve("booth")
	require.NoError(t, err)
	assert.Equal(t, []lighting.LightID{"front", "back"}, booth.Lights)

	manual, err := reg.Resolve(modes.KeyManual)
	require.NoError(t, err)
	assert.Equal(t, []lighting.LightID{"front", "back"}, manual.Lights)

	assert.Equal(t, map[lighting.ModeName]string{lighting.ModeRainbow: "slowRainbow"}, mutations)

	_, err = reg.Resolve("pinkpulse")
	assert.ErrorIs(t, err, lighting.ErrUnknownRoute)
}

func TestBuildRegistryRejectsModeWithoutName(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Modes = []config.ModeDefinition{{Route: "strobe"}}
	_, _, err := BuildRegistry(&cfg)
	assert.Error(t, err)
}

func TestBuildRegistryKeepsLightIDsAsWritten(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Lights = []string{"light1", " light2 ", "", "Light3"}

	reg, _, err := BuildRegistry(&cfg)
	require.NoError(t, err)

	manual, err := reg.Resolve(modes.KeyManual)
	require.NoError(t, err)
	assert.Equal(t, []lighting.LightID{"light1", "light2", "Light3"}, manual.Lights)
}

func TestBuildRegistryRejectsInvalidMutation(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Modes = []config.ModeDefinition{{Route: "strobe", Mode: "Strobe", Mutation: "strobe { id }"}}
	_, _, err := BuildRegistry(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a GraphQL field name")
}
