package config

import (
	"time"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
// Built-in modes live in the mode registry, so Modes starts empty.
func GetDefaultConfig() LumictlConfig {
	return LumictlConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
		},
		Rig: RigConfig{
			Endpoint:  "http://localhost:8000/graphql",
			Timeout:   5 * time.Second,
			Dialect:   DialectNested,
			RateLimit: 20,
			Burst:     5,
		},
		Lights: []string{"TOP", "BOTTOM", "LEFT", "RIGHT"},
		Modes:  []ModeDefinition{},
		Dashboard: DashboardConfig{
			InitialRoute: "off",
			GestureIdle:  250 * time.Millisecond,
			Step:         0.01,
		},
		MCP: MCPConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
	}
}
