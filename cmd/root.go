package cmd

import (
	"context"
	"fmt"
	"os"

	"lumictl/internal/app"
	"lumictl/internal/cli"

	"github.com/spf13/cobra"
)

var (
	// configPath replaces layered config loading with a single file.
	configPath string
	// outputFormat applies to commands that print results.
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lumictl",
	Short: "Control panel for an LED lighting rig",
	Long: `lumictl drives an LED lighting rig over its GraphQL control API.

It opens an interactive dashboard for switching rig modes and mixing
per-light colors, offers one-shot commands for scripts, and can expose
the same controls to AI assistants as an MCP server.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown routes, unreachable rig)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "lumictl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file instead of the default locations")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newModeCmd())
	rootCmd.AddCommand(newLightCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// openApplication loads configuration and wires services for one command.
func openApplication(noTUI, debug bool, route string) (*app.Application, error) {
	application, err := app.NewApplication(app.NewConfig(noTUI, debug, configPath, route))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func newPrinter(cmd *cobra.Command) (*cli.Printer, error) {
	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), format), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
