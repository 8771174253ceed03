package config

import (
	"time"
)

// LumictlConfig is the top-level configuration structure for lumictl.
type LumictlConfig struct {
	GlobalSettings GlobalSettings   `yaml:"globalSettings"`
	Rig            RigConfig        `yaml:"rig"`
	Lights         []string         `yaml:"lights,omitempty"` // Fixture ids in display order
	Modes          []ModeDefinition `yaml:"modes,omitempty"`
	Dashboard      DashboardConfig  `yaml:"dashboard"`
	State          StateConfig      `yaml:"state"`
	MCP            MCPConfig        `yaml:"mcp"`
}

// GlobalSettings holds process wide preferences.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn, error
}

const (
	DialectNested = "nested"
	DialectLumi   = "lumi"
)

// RigConfig describes the GraphQL endpoint of the lighting rig.
type RigConfig struct {
	Endpoint  string        `yaml:"endpoint,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	Dialect   string        `yaml:"dialect,omitempty"`   // "nested" or "lumi"
	RateLimit float64       `yaml:"rateLimit,omitempty"` // Requests per second, 0 disables
	Burst     int           `yaml:"burst,omitempty"`
}

// ModeDefinition adds or overrides one entry of the mode registry.
type ModeDefinition struct {
	Route    string `yaml:"route"`              // Route key, e.g. "pinkpulse"
	Title    string `yaml:"title,omitempty"`    // Drawer and header label
	Icon     string `yaml:"icon,omitempty"`     // Optional emoji for display in TUI
	Mode     string `yaml:"mode"`               // Mode name sent to the rig
	Mutation string `yaml:"mutation,omitempty"` // GraphQL field activating the mode
	Manual   bool   `yaml:"manual,omitempty"`   // Show per light color sliders
	Disabled bool   `yaml:"disabled,omitempty"` // Hide a built-in mode
}

// DashboardConfig tunes the interactive dashboard.
type DashboardConfig struct {
	InitialRoute string        `yaml:"initialRoute,omitempty"`
	GestureIdle  time.Duration `yaml:"gestureIdle,omitempty"` // Quiet time that completes a slider gesture
	Step         float64       `yaml:"step,omitempty"`        // Slider increment per key press
}

// StateConfig selects where last colors are kept.
type StateConfig struct {
	Path string `yaml:"path,omitempty"` // SQLite file, empty keeps colors in memory
}

const (
	MCPTransportSSE   = "sse"
	MCPTransportStdio = "stdio"
)

// MCPConfig configures the agent-facing MCP server.
type MCPConfig struct {
	Transport   string `yaml:"transport,omitempty"`
	Host        string `yaml:"host,omitempty"`
	Port        int    `yaml:"port,omitempty"`
	MetricsAddr string `yaml:"metricsAddr,omitempty"` // Prometheus listener, empty disables
}
