package lighting

import (
	"context"
	"fmt"
)

// RemoteLightAPI is the rig's write surface. Implementations perform one
// request/response round trip per call.
type RemoteLightAPI interface {
	SetLightColor(ctx context.Context, light LightID, color Color) error
	ActivateMode(ctx context.Context, mode ModeName) error
}

// Op names the remote operation a Request performs.
type Op string

const (
	OpSetLightColor Op = "setLightColor"
	OpActivateMode  Op = "activateMode"
)

// Request is one pending remote write.
type Request struct {
	Op    Op
	Light LightID
	Color Color
	Mode  ModeName

	// Generation ties an activation to the view mount that issued it.
	Generation uint64
}

// SetLightColorRequest builds a color write for light.
func SetLightColorRequest(light LightID, c Color) Request {
	return Request{Op: OpSetLightColor, Light: light, Color: c}
}

// ActivateModeRequest builds a mode switch.
func ActivateModeRequest(mode ModeName, generation uint64) Request {
	return Request{Op: OpActivateMode, Mode: mode, Generation: generation}
}

// Apply performs the request against api.
func (r Request) Apply(ctx context.Context, api RemoteLightAPI) error {
	switch r.Op {
	case OpSetLightColor:
		return api.SetLightColor(ctx, r.Light, r.Color)
	case OpActivateMode:
		return api.ActivateMode(ctx, r.Mode)
	default:
		return fmt.Errorf("unsupported op %q", r.Op)
	}
}

func (r Request) String() string {
	switch r.Op {
	case OpSetLightColor:
		return fmt.Sprintf("%s(%s, %s)", r.Op, r.Light, r.Color)
	case OpActivateMode:
		return fmt.Sprintf("%s(%s)", r.Op, r.Mode)
	default:
		return string(r.Op)
	}
}

// Dispatcher hands requests off for asynchronous execution. Dispatch must
// return without waiting for the remote call.
type Dispatcher interface {
	Dispatch(req Request)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(req Request)

// Dispatch calls f(req).
func (f DispatcherFunc) Dispatch(req Request) { f(req) }

// Result reports the outcome of a dispatched request.
type Result struct {
	Request   Request
	RequestID string
	Err       error
}
