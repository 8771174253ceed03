package model

import (
	"lumictl/internal/lighting"
	"lumictl/pkg/logging"
)

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// DispatchResultMsg carries the outcome of one remote write.
type DispatchResultMsg struct {
	Result lighting.Result
}

// GestureIdleMsg fires when a light's sliders have been still for the idle
// interval. Seq identifies which scheduling produced it.
type GestureIdleMsg struct {
	Light lighting.LightID
	Seq   uint64
}

// NavigateMsg asks the dashboard to switch to a route.
type NavigateMsg struct {
	Route string
}

// ChannelClosedMsg reports that a background channel the TUI listens on closed.
type ChannelClosedMsg struct {
	Name string
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
