package cmd

import (
	"fmt"
	"io"

	logger "github.com/PolarWolf314/keepsake/internal/logging"
	"github.com/PolarWolf314/keepsake/internal/preferences"
	"github.com/PolarWolf314/keepsake/internal/ui"

	"github.com/spf13/cobra"
)

var (
	destinationsVerbose bool
	destinationsDebug   bool
	DestinationsLogger  logger.Logger

	// DestinationsCmd is the top-level destinations command.
	DestinationsCmd = &cobra.Command{
		Use:     "destinations",
		Aliases: []string{"honeymoon"},
		Short:   "Pick the honeymoon destination",
		Long: `Keeps the list of honeymoon destinations and the one currently chosen.

Changes are saved immediately and survive restarts.

Examples:
  # Show the list
  keepsake destinations list

  # Add a destination (it becomes the choice)
  keepsake destinations add Japan

  # Choose one already on the list
  keepsake destinations select Europe`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			DestinationsLogger = logger.Logger{
				Verbose: destinationsVerbose,
				Debug:   destinationsDebug,
			}
			DestinationsLogger.Debugf("Initializing destinations command with verbose=%t, debug=%t", destinationsVerbose, destinationsDebug)
		},
	}
)

func init() {
	DestinationsCmd.PersistentFlags().BoolVarP(&destinationsVerbose, "verbose", "v", false, "enable verbose output")
	DestinationsCmd.PersistentFlags().BoolVarP(&destinationsDebug, "debug", "d", false, "enable debug output")

	DestinationsCmd.AddCommand(destinationsListCmd)
	DestinationsCmd.AddCommand(destinationsAddCmd)
	DestinationsCmd.AddCommand(destinationsSelectCmd)
}

// GetDestinationsCmd returns the DestinationsCmd for testing.
func GetDestinationsCmd() *cobra.Command {
	return DestinationsCmd
}

// ResetDestinationsState resets all destinations command global variables to their default values for testing.
func ResetDestinationsState() {
	destinationsVerbose = false
	destinationsDebug = false
	resetDestinationsListState()
	resetCobraFlagState(DestinationsCmd)
}

// printDestinations writes the list with the current choice marked.
func printDestinations(out io.Writer, list preferences.List) {
	if len(list.Options) == 0 {
		fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" No destinations yet.")
		return
	}
	for _, option := range list.Options {
		fmt.Fprintln(out, ui.Bullet(option, option == list.Selected))
	}
}

// warnRecovered tells the user their saved list could not be read.
func warnRecovered(recovered bool) {
	if recovered {
		DestinationsLogger.WarnfUser("Saved destinations could not be read; starting from the default list")
	}
}
