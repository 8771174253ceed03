package app

import (
	"lumictl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces layered loading with a single file when set.
	ConfigPath string

	// InitialRoute overrides dashboard.initialRoute.
	InitialRoute string

	// Loaded configuration
	LumictlConfig *config.LumictlConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath, initialRoute string) *Config {
	return &Config{
		NoTUI:        noTUI,
		Debug:        debug,
		ConfigPath:   configPath,
		InitialRoute: initialRoute,
	}
}

// Route returns the route to open first.
func (c *Config) Route() string {
	if c.InitialRoute != "" {
		return c.InitialRoute
	}
	if c.LumictlConfig != nil {
		return c.LumictlConfig.Dashboard.InitialRoute
	}
	return ""
}
