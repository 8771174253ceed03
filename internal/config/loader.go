package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/lumictl"
	projectConfigDir = ".lumictl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the lumictl configuration by layering default, user, and project settings.
func LoadConfig() (LumictlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return LumictlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return LumictlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, config.Validate()
}

// LoadConfigFromPath layers a single explicit file over the defaults.
func LoadConfigFromPath(path string) (LumictlConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return LumictlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	return config, config.Validate()
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (LumictlConfig, error) {
	var config LumictlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return LumictlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return LumictlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Scalars override
// when set; modes are merged by route keeping first-seen order.
func mergeConfigs(base, overlay LumictlConfig) LumictlConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	if overlay.Rig.Endpoint != "" {
		merged.Rig.Endpoint = overlay.Rig.Endpoint
	}
	if overlay.Rig.Timeout != 0 {
		merged.Rig.Timeout = overlay.Rig.Timeout
	}
	if overlay.Rig.Dialect != "" {
		merged.Rig.Dialect = overlay.Rig.Dialect
	}
	if overlay.Rig.RateLimit != 0 {
		merged.Rig.RateLimit = overlay.Rig.RateLimit
	}
	if overlay.Rig.Burst != 0 {
		merged.Rig.Burst = overlay.Rig.Burst
	}

	if len(overlay.Lights) > 0 {
		merged.Lights = append([]string(nil), overlay.Lights...)
	}

	merged.Modes = append([]ModeDefinition(nil), base.Modes...)
	index := make(map[string]int, len(merged.Modes))
	for i, m := range merged.Modes {
		index[m.Route] = i
	}
	for _, m := range overlay.Modes {
		if i, ok := index[m.Route]; ok {
			merged.Modes[i] = m
			continue
		}
		index[m.Route] = len(merged.Modes)
		merged.Modes = append(merged.Modes, m)
	}

	if overlay.Dashboard.InitialRoute != "" {
		merged.Dashboard.InitialRoute = overlay.Dashboard.InitialRoute
	}
	if overlay.Dashboard.GestureIdle != 0 {
		merged.Dashboard.GestureIdle = overlay.Dashboard.GestureIdle
	}
	if overlay.Dashboard.Step != 0 {
		merged.Dashboard.Step = overlay.Dashboard.Step
	}

	if overlay.State.Path != "" {
		merged.State.Path = overlay.State.Path
	}

	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}
	if overlay.MCP.MetricsAddr != "" {
		merged.MCP.MetricsAddr = overlay.MCP.MetricsAddr
	}

	return merged
}

// Validate rejects values no component can work with.
func (c LumictlConfig) Validate() error {
	if c.Rig.Endpoint == "" {
		return fmt.Errorf("rig.endpoint must not be empty")
	}
	switch c.Rig.Dialect {
	case "", DialectNested, DialectLumi:
	default:
		return fmt.Errorf("rig.dialect %q is not one of %q, %q", c.Rig.Dialect, DialectNested, DialectLumi)
	}
	if c.Rig.RateLimit < 0 {
		return fmt.Errorf("rig.rateLimit must not be negative")
	}
	if c.Dashboard.Step < 0 || c.Dashboard.Step > 1 {
		return fmt.Errorf("dashboard.step must be within [0,1], got %v", c.Dashboard.Step)
	}
	switch c.MCP.Transport {
	case "", MCPTransportStdio, MCPTransportSSE:
	default:
		return fmt.Errorf("mcp.transport %q is not one of %q, %q", c.MCP.Transport, MCPTransportStdio, MCPTransportSSE)
	}
	for i, m := range c.Modes {
		if m.Route == "" {
			return fmt.Errorf("modes[%d]: route must not be empty", i)
		}
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
