package app

import (
	"context"
	"fmt"

	"lumictl/internal/tui/controller"
	"lumictl/internal/tui/design"
	"lumictl/internal/tui/model"
	"lumictl/pkg/logging"
)

// runCLIMode opens the initial route once and reports the outcome.
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	route := config.Route()
	if route == "" {
		return fmt.Errorf("no route given: pass --route or set dashboard.initialRoute")
	}
	logging.Info("CLI", "Running in no-TUI mode, opening %s", route)

	status, err := services.LightingAPI.ActivateMode(ctx, route)
	if err != nil {
		logging.Error("CLI", err, "Failed to open %s", route)
		return err
	}
	logging.Info("CLI", "%s is %s", status.Mode, status.State)
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	cfg := config.LumictlConfig
	p, err := controller.NewProgram(model.TUIConfig{
		DebugMode:    config.Debug,
		ColorMode:    "auto",
		Shell:        services.Shell,
		Results:      services.Dispatcher.Results(),
		InitialRoute: config.Route(),
		GestureIdle:  cfg.Dashboard.GestureIdle,
		Step:         cfg.Dashboard.Step,
		Endpoint:     cfg.Rig.Endpoint,
		Dialect:      string(services.Rig.Dialect()),
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
