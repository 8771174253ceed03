package app

import (
	"context"
	"fmt"
	"os"

	"lumictl/internal/config"
	"lumictl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs lumictl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and initializes services. Logging goes
// to stderr so stdout stays free for command output and the stdio MCP
// transport.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cliLogLevel(cfg.Debug, ""), os.Stderr)

	var lumictlCfg config.LumictlConfig
	var err error

	if cfg.ConfigPath != "" {
		lumictlCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load lumictl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load lumictl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		lumictlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load lumictl configuration")
			return nil, fmt.Errorf("failed to load lumictl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.LumictlConfig = &lumictlCfg

	// The configured level applies once the file is known.
	logging.InitForCLI(cliLogLevel(cfg.Debug, lumictlCfg.GlobalSettings.LogLevel), os.Stderr)

	services, err := InitializeServices(cfg.LumictlConfig)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the wired services.
func (a *Application) Services() *Services { return a.services }

// Config returns the application configuration.
func (a *Application) Config() *Config { return a.config }

// Close releases every service.
func (a *Application) Close() error {
	return a.services.Close()
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}

func cliLogLevel(debug bool, configured string) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	if configured == "" {
		return logging.LevelInfo
	}
	return logging.ParseLevel(configured)
}
