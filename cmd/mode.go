package cmd

import (
	"github.com/spf13/cobra"
)

func newModeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mode",
		Short: "List and activate rig modes",
	}
	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the registered modes",
		Args:  cobra.NoArgs,
		RunE:  runModeList,
	})
	c.AddCommand(&cobra.Command{
		Use:   "activate <route>",
		Short: "Switch the rig into the mode behind a route",
		Long: `Opens the route once and waits for the rig to answer. The command
fails when the route is unknown or the rig rejects the activation.`,
		Example: "  lumictl mode activate /rainbow",
		Args:    cobra.ExactArgs(1),
		RunE:    runModeActivate,
	})
	return c
}

func runModeList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	application, err := openApplication(true, false, "")
	if err != nil {
		return err
	}
	defer application.Close()

	return printer.PrintModes(application.Services().LightingAPI.ListModes(commandContext(cmd)))
}

func runModeActivate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	application, err := openApplication(true, false, "")
	if err != nil {
		return err
	}
	defer application.Close()

	status, err := application.Services().LightingAPI.ActivateMode(commandContext(cmd), args[0])
	if status != nil {
		if perr := printer.PrintModeStatus(status); perr != nil {
			return perr
		}
	}
	return err
}
