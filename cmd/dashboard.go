package cmd

import (
	"github.com/spf13/cobra"
)

var (
	dashboardRoute string
	dashboardDebug bool
	dashboardNoTUI bool
)

func newDashboardCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive lighting dashboard",
		Long: `Opens the lighting dashboard. It can run in two modes:

1. Interactive TUI Mode (default):
   - Shows the mode drawer, the active mode and its activation state.
   - Manual mode offers one card per light with R, G and B sliders.
   - A slider gesture sends a single color write once it settles.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Opens the route given by --route (or dashboard.initialRoute) once,
     waits for the rig to answer and exits non-zero on failure.

Running lumictl without a subcommand is the same as 'lumictl dashboard'.`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}

	c.Flags().StringVar(&dashboardRoute, "route", "", "Route to open first, e.g. /manual")
	c.Flags().BoolVar(&dashboardDebug, "debug", false, "Enable debug logging")
	c.Flags().BoolVar(&dashboardNoTUI, "no-tui", false, "Open the route once without the interactive UI")
	return c
}

func runDashboard(cmd *cobra.Command, args []string) error {
	application, err := openApplication(dashboardNoTUI, dashboardDebug, dashboardRoute)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run(commandContext(cmd))
}
