package cmd

import (
	"lumictl/internal/lighting"

	"github.com/spf13/cobra"
)

func newLightCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "light",
		Short: "Read and set light colors in manual mode",
	}

	var color lighting.Color
	set := &cobra.Command{
		Use:   "set <light>",
		Short: "Commit a color to one light",
		Long: `Opens manual mode if needed and commits the color as a single write.
Channel values range from 0 to 1; channels left out are 0.`,
		Example: "  lumictl light set TOP --r 1 --g 0.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLightSet(cmd, args[0], color)
		},
	}
	set.Flags().Float64Var(&color.R, "r", 0, "Red channel")
	set.Flags().Float64Var(&color.G, "g", 0, "Green channel")
	set.Flags().Float64Var(&color.B, "b", 0, "Blue channel")

	c.AddCommand(set)
	c.AddCommand(&cobra.Command{
		Use:   "get <light>",
		Short: "Show the last committed color of a light",
		Args:  cobra.ExactArgs(1),
		RunE:  runLightGet,
	})
	return c
}

func runLightSet(cmd *cobra.Command, light string, color lighting.Color) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	application, err := openApplication(true, false, "")
	if err != nil {
		return err
	}
	defer application.Close()

	status, err := application.Services().LightingAPI.SetLightColor(commandContext(cmd), light, color)
	if status != nil {
		if perr := printer.PrintLight(status); perr != nil {
			return perr
		}
	}
	return err
}

func runLightGet(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	application, err := openApplication(true, false, "")
	if err != nil {
		return err
	}
	defer application.Close()

	status, err := application.Services().LightingAPI.GetLightColor(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	return printer.PrintLight(status)
}
