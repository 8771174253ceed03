// Package gesture turns slider gestures into color writes.
//
// A Controller owns the in-progress color of exactly one light. Channel
// moves update the local value only; completing the gesture dispatches one
// write carrying the full, current triple. Controllers are not safe for
// concurrent use: they belong to the event loop that feeds them input.
package gesture

import (
	"fmt"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"
)

const subsystem = "Gesture"

// Controller tracks one light's GestureState.
type Controller struct {
	light      lighting.LightID
	color      lighting.Color
	dispatcher lighting.Dispatcher

	dirty    bool
	detached bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed starts the gesture from c instead of black. Invalid seeds are ignored.
func WithSeed(c lighting.Color) Option {
	return func(gc *Controller) {
		if c.Valid() {
			gc.color = c
		}
	}
}

// New creates a controller for light that sends completed gestures to d.
func New(light lighting.LightID, d lighting.Dispatcher, opts ...Option) *Controller {
	gc := &Controller{
		light:      light,
		color:      lighting.Black,
		dispatcher: d,
	}
	for _, opt := range opts {
		opt(gc)
	}
	return gc
}

// Light returns the fixture this controller drives.
func (c *Controller) Light() lighting.LightID { return c.light }

// Color returns the current GestureState color.
func (c *Controller) Color() lighting.Color { return c.color }

// Dirty reports whether moves happened since the last completed gesture.
func (c *Controller) Dirty() bool { return c.dirty }

// Detached reports whether the owning view has gone away.
func (c *Controller) Detached() bool { return c.detached }

// OnChannelMove records an intermediate slider value. It never talks to the rig.
func (c *Controller) OnChannelMove(ch lighting.Channel, v float64) error {
	if c.detached {
		logging.Debug(subsystem, "Ignoring move on detached light %s", c.light)
		return nil
	}
	switch ch {
	case lighting.ChannelR, lighting.ChannelG, lighting.ChannelB:
	default:
		return fmt.Errorf("%w: %s", lighting.ErrInvalidChannelValue, ch)
	}
	if !lighting.ValidChannelValue(v) {
		return fmt.Errorf("%w: %s=%v for light %s", lighting.ErrInvalidChannelValue, ch, v, c.light)
	}
	c.color = c.color.With(ch, v)
	c.dirty = true
	return nil
}

// Nudge moves a channel by delta, clamped into [0, 1].
func (c *Controller) Nudge(ch lighting.Channel, delta float64) error {
	v := c.color.Get(ch) + delta
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return c.OnChannelMove(ch, v)
}

// OnGestureComplete dispatches exactly one write with the current triple.
func (c *Controller) OnGestureComplete() {
	if c.detached {
		logging.Debug(subsystem, "Dropping gesture completion on detached light %s", c.light)
		return
	}
	c.dirty = false
	if c.dispatcher == nil {
		return
	}
	c.dispatcher.Dispatch(lighting.SetLightColorRequest(c.light, c.color))
}

// Detach freezes the controller once its view unmounts.
func (c *Controller) Detach() {
	c.detached = true
}
