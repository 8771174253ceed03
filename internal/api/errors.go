package api

import "errors"

// Common errors for API operations
var (
	// ErrNoManualMode is returned when no registered mode controls a light.
	ErrNoManualMode = errors.New("no manual mode controls this light")

	// ErrUnknownLight is returned for fixtures that are not configured.
	ErrUnknownLight = errors.New("unknown light")
)
