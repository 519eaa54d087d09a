package cmd

import (
	"fmt"

	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var destinationsSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Choose a destination already on the list",
	Long: `Makes a destination from the list the current choice.

The name must match exactly. Names that are not on the list are ignored;
use "keepsake destinations add" to add them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		DestinationsLogger.Infof("Starting destinations select command")
		out := cmd.OutOrStdout()

		spinner, cleanup := startSpinner(out, "Saving choice...", destinationsVerbose, destinationsDebug)
		defer cleanup()

		result, err := workflows.SelectDestination(cmd.Context(), args[0])
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save choice"
			return DestinationsLogger.ErrorfAndReturn("Failed to select destination: %v", err)
		}
		warnRecovered(result.Recovered)

		if !result.Changed {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " " + ui.Highlight.Sprint(args[0]) + " is not on the list; nothing changed\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint(fmt.Sprintf("keepsake destinations add %q", args[0])) + " to add it"
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Chose " + ui.Highlight.Sprint(result.List.Selected)
		return nil
	},
}
