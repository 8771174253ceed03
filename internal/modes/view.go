package modes

import (
	"lumictl/internal/activation"
	"lumictl/internal/gesture"
	"lumictl/internal/lighting"
)

// SeedSource supplies the starting color of a light when a view mounts.
type SeedSource interface {
	Seed(light lighting.LightID) (lighting.Color, bool)
}

// View is one mounted instance of a mode.
type View struct {
	Entry      Entry
	Activation *activation.Controller
	Gestures   []*gesture.Controller
}

// NewView mounts e. Remote writes go to d; seeds may be nil.
func (e Entry) NewView(d lighting.Dispatcher, seeds SeedSource) *View {
	v := &View{
		Entry:      e,
		Activation: activation.New(e.Mode, d),
	}
	for _, light := range e.Lights {
		var opts []gesture.Option
		if seeds != nil {
			if c, ok := seeds.Seed(light); ok {
				opts = append(opts, gesture.WithSeed(c))
			}
		}
		v.Gestures = append(v.Gestures, gesture.New(light, d, opts...))
	}
	return v
}

// Enter runs when the view becomes the active route target.
func (v *View) Enter() {
	v.Activation.OnModeViewEntered()
}

// Exit runs when the route moves away. The view's gestures are frozen.
func (v *View) Exit() {
	v.Activation.OnModeViewExited()
	for _, g := range v.Gestures {
		g.Detach()
	}
}

// Gesture returns the controller for light.
func (v *View) Gesture(light lighting.LightID) (*gesture.Controller, bool) {
	for _, g := range v.Gestures {
		if g.Light() == light {
			return g, true
		}
	}
	return nil, false
}
