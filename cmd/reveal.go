package cmd

import (
	logger "github.com/PolarWolf314/keepsake/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	revealVerbose bool
	revealDebug   bool
	RevealLogger  logger.Logger

	// RevealCmd is the top-level reveal command.
	RevealCmd = &cobra.Command{
		Use:   "reveal",
		Short: "Show or unlock the hidden parts of the page",
		Long: `Some facts on the page stay hidden until the right answer is given.

Answers ignore spacing and capitals, and there is no limit on tries.
Unlocked items stay open only for the current run.

Examples:
  # List every hidden item with its hint
  keepsake reveal list

  # Answer the question for an item
  keepsake reveal unlock future`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			RevealLogger = logger.Logger{
				Verbose: revealVerbose,
				Debug:   revealDebug,
			}
			RevealLogger.Debugf("Initializing reveal command with verbose=%t, debug=%t", revealVerbose, revealDebug)
		},
	}
)

func init() {
	RevealCmd.PersistentFlags().BoolVarP(&revealVerbose, "verbose", "v", false, "enable verbose output")
	RevealCmd.PersistentFlags().BoolVarP(&revealDebug, "debug", "d", false, "enable debug output")

	RevealCmd.AddCommand(revealListCmd)
	RevealCmd.AddCommand(revealUnlockCmd)
}

// GetRevealCmd returns the RevealCmd for testing.
func GetRevealCmd() *cobra.Command {
	return RevealCmd
}

// ResetRevealState resets all reveal command global variables to their default values for testing.
func ResetRevealState() {
	revealVerbose = false
	revealDebug = false
	resetRevealUnlockState()
	resetCobraFlagState(RevealCmd)
}

// resetCobraFlagState clears the changed marker on every flag of cmd and its children.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}
