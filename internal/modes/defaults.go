package modes

import "lumictl/internal/lighting"

// Route keys of the built-in modes.
const (
	KeyOff       = "off"
	KeyManual    = "manual"
	KeyPinkPulse = "pinkpulse"
	KeyRainbow   = "rainbow"
)

// DefaultEntries returns the built-in mode table for the given fixtures.
func DefaultEntries(lights []lighting.LightID) []Entry {
	if len(lights) == 0 {
		lights = lighting.DefaultLights()
	}
	return []Entry{
		{Key: KeyOff, Title: "Lights Off", Icon: "⏻", Mode: lighting.ModeOff},
		{Key: KeyManual, Title: "Manual Settings", Icon: "🖌", Mode: lighting.ModeManual, Lights: lights},
		{Key: KeyPinkPulse, Title: "Pink Pulse", Icon: "♥", Mode: lighting.ModePinkPulse},
		{Key: KeyRainbow, Title: "Rainbow", Icon: "🌈", Mode: lighting.ModeRainbow},
	}
}
