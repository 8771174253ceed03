// Package activation fires a mode's activation exactly once per view entry.
//
// The guard is bound to the view lifecycle (Enter/Exit), never to
// rendering: a dispatched activation may itself cause a re-render, and a
// render-bound call would loop.
package activation

import (
	"sync/atomic"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"
)

const subsystem = "Activation"

// generations is shared by all controllers so that an outcome can never be
// mistaken for one issued by a later mount of the same mode.
var generations atomic.Uint64

// State is the controller's position in Inactive -> Activating -> Active.
type State int

const (
	StateInactive State = iota
	StateActivating
	StateActive
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateActivating:
		return "Activating"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Controller owns one mode view's ActivationFlag.
type Controller struct {
	mode       lighting.ModeName
	dispatcher lighting.Dispatcher

	activated  bool
	state      State
	generation uint64
	lastErr    error
}

// New creates a controller that activates mode through d.
func New(mode lighting.ModeName, d lighting.Dispatcher) *Controller {
	return &Controller{mode: mode, dispatcher: d}
}

// Mode returns the mode this controller activates.
func (c *Controller) Mode() lighting.ModeName { return c.mode }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Active reports the ActivationFlag.
func (c *Controller) Active() bool { return c.activated }

// Generation identifies the current entry. It is unique per dispatch.
func (c *Controller) Generation() uint64 { return c.generation }

// LastError returns the failure of the most recent activation, if any.
func (c *Controller) LastError() error { return c.lastErr }

// OnModeViewEntered dispatches the activation unless it already happened
// for this entry.
func (c *Controller) OnModeViewEntered() {
	if c.activated {
		logging.Debug(subsystem, "%s already activated for this entry", c.mode)
		return
	}
	c.activated = true
	c.generation = generations.Add(1)
	c.state = StateActivating
	c.lastErr = nil

	if c.dispatcher == nil {
		c.state = StateActive
		return
	}
	logging.Debug(subsystem, "Activating %s (generation %d)", c.mode, c.generation)
	c.dispatcher.Dispatch(lighting.ActivateModeRequest(c.mode, c.generation))
}

// OnModeViewExited clears the flag so the next entry activates again.
func (c *Controller) OnModeViewExited() {
	c.activated = false
	c.state = StateInactive
}

// Resolve records the outcome of the activation issued for generation.
// Outcomes from earlier entries are ignored. A failure is not retried; the
// view stays Active and the user re-enters the mode to try again.
func (c *Controller) Resolve(generation uint64, err error) {
	if generation != c.generation || c.state != StateActivating {
		logging.Debug(subsystem, "Ignoring stale resolution for %s (generation %d, current %d)", c.mode, generation, c.generation)
		return
	}
	c.lastErr = err
	c.state = StateActive
	if err != nil {
		logging.Warn(subsystem, "Activation of %s failed: %v", c.mode, err)
	}
}
