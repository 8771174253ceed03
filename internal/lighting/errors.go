package lighting

import "errors"

// Error taxonomy shared by the controllers, the registry and the rig client.
var (
	// ErrRemoteCallFailed marks a failed round trip to the rig. Callers log it and move on.
	ErrRemoteCallFailed = errors.New("remote call failed")

	// ErrUnknownRoute is returned when a route key matches no registered mode.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrInvalidChannelValue rejects a channel update outside [0, 1].
	ErrInvalidChannelValue = errors.New("invalid channel value")
)
