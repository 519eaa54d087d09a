package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var destinationsListJSON bool

func init() {
	destinationsListCmd.Flags().BoolVar(&destinationsListJSON, "json", false, "output in JSON format")
}

// resetDestinationsListState resets the list command's global state for testing.
func resetDestinationsListState() {
	destinationsListJSON = false
}

var destinationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the destinations and the current choice",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		DestinationsLogger.Infof("Starting destinations list command")

		result, err := workflows.ListDestinations(cmd.Context())
		if err != nil {
			return DestinationsLogger.ErrorfAndReturn("Failed to load destinations: %v", err)
		}
		warnRecovered(result.Recovered)
		DestinationsLogger.Debugf("Loaded %d destinations, selected=%q", len(result.List.Options), result.List.Selected)

		out := cmd.OutOrStdout()
		if destinationsListJSON {
			data, err := json.MarshalIndent(result.List, "", "  ")
			if err != nil {
				return DestinationsLogger.ErrorfAndReturn("Failed to marshal destinations to JSON: %v", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printDestinations(out, result.List)
		if result.List.Selected == "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("keepsake destinations select <name>")+" to choose one")
		}
		return nil
	},
}
