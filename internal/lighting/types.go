package lighting

import (
	"fmt"
	"math"
)

// LightID names one addressable fixture on the rig.
type LightID string

// Default fixtures of the four-zone rig.
const (
	LightTop    LightID = "TOP"
	LightBottom LightID = "BOTTOM"
	LightLeft   LightID = "LEFT"
	LightRight  LightID = "RIGHT"
)

// DefaultLights returns the fixtures in display order.
func DefaultLights() []LightID {
	return []LightID{LightTop, LightBottom, LightLeft, LightRight}
}

// Channel selects one component of a Color.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// Channels lists the color channels in slider order.
func Channels() []Channel {
	return []Channel{ChannelR, ChannelG, ChannelB}
}

func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel accepts r/g/b in either case.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "r", "R", "red":
		return ChannelR, nil
	case "g", "G", "green":
		return ChannelG, nil
	case "b", "B", "blue":
		return ChannelB, nil
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidChannelValue, s)
}

// Color is an RGB triple with every channel in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// Black is the initial color of a fresh gesture.
var Black = Color{}

// ValidChannelValue reports whether v may be stored in a channel.
func ValidChannelValue(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Valid reports whether all three channels are in range.
func (c Color) Valid() bool {
	return ValidChannelValue(c.R) && ValidChannelValue(c.G) && ValidChannelValue(c.B)
}

// Get returns the value of one channel.
func (c Color) Get(ch Channel) float64 {
	switch ch {
	case ChannelG:
		return c.G
	case ChannelB:
		return c.B
	default:
		return c.R
	}
}

// With returns a copy of c with one channel replaced.
func (c Color) With(ch Channel, v float64) Color {
	switch ch {
	case ChannelR:
		c.R = v
	case ChannelG:
		c.G = v
	case ChannelB:
		c.B = v
	}
	return c
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func (c Color) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ModeName identifies a rig operating mode.
type ModeName string

const (
	ModeOff        ModeName = "Off"
	ModeManual     ModeName = "Manual"
	ModePinkPulse  ModeName = "PinkPulse"
	ModeRainbow    ModeName = "Rainbow"
	ModeController ModeName = "Controller"
)
