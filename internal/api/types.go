package api

import (
	"context"

	"lumictl/internal/lighting"
)

// ModeInfo describes one registered mode.
type ModeInfo struct {
	Route  string   `json:"route"`
	Title  string   `json:"title"`
	Mode   string   `json:"mode"`
	Icon   string   `json:"icon,omitempty"`
	Lights []string `json:"lights,omitempty"`
	Active bool     `json:"active"`
}

// ModeStatus reports the activation state of the mounted mode.
type ModeStatus struct {
	Route string `json:"route"`
	Mode  string `json:"mode"`
	State string `json:"state"`
	// Dispatched is false when the route was already mounted.
	Dispatched bool   `json:"dispatched"`
	Error      string `json:"error,omitempty"`
}

// LightStatus reports a light's last committed color.
type LightStatus struct {
	Light string         `json:"light"`
	Color lighting.Color `json:"color"`
	Hex   string         `json:"hex"`
	// Known is false when nothing was ever committed for the light.
	Known bool   `json:"known"`
	Route string `json:"route,omitempty"`
	Error string `json:"error,omitempty"`
}

// LightingAPI is the control surface shared by the CLI and the MCP tools.
type LightingAPI interface {
	ListModes(ctx context.Context) []ModeInfo
	ActivateMode(ctx context.Context, route string) (*ModeStatus, error)
	SetLightColor(ctx context.Context, light string, c lighting.Color) (*LightStatus, error)
	GetLightColor(ctx context.Context, light string) (*LightStatus, error)
}
