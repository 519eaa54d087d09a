package cmd

import (
	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var destinationsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a destination and choose it",
	Long: `Adds a destination to the end of the list and makes it the current choice.

Surrounding spaces are dropped. Adding a name already on the list (same
capitals) just chooses it. A blank name changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		DestinationsLogger.Infof("Starting destinations add command")
		out := cmd.OutOrStdout()

		spinner, cleanup := startSpinner(out, "Saving destination...", destinationsVerbose, destinationsDebug)
		defer cleanup()

		result, err := workflows.AddDestination(cmd.Context(), args[0])
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save destination"
			return DestinationsLogger.ErrorfAndReturn("Failed to add destination: %v", err)
		}
		warnRecovered(result.Recovered)

		switch {
		case !result.Changed:
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Nothing to add: the name is blank"
		case result.Added:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Added and chose " + ui.Highlight.Sprint(result.List.Selected)
		default:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Already on the list; chose " + ui.Highlight.Sprint(result.List.Selected)
		}
		DestinationsLogger.Debugf("Destinations now: %v", result.List.Options)
		return nil
	},
}
