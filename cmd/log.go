package cmd

import (
	"encoding/json"
	"fmt"

	logger "github.com/PolarWolf314/keepsake/internal/logging"
	"github.com/PolarWolf314/keepsake/internal/history"
	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logVerbose   bool
	logDebug     bool
	logLimit     int
	logOperation string
	logJSON      bool
	LogLogger    logger.Logger
)

func init() {
	LogCmd.Flags().BoolVarP(&logVerbose, "verbose", "v", false, "enable verbose output")
	LogCmd.Flags().BoolVarP(&logDebug, "debug", "d", false, "enable debug output")
	LogCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "show only the last N entries")
	LogCmd.Flags().StringVar(&logOperation, "op", "", "show only entries for this operation")
	LogCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON lines")
}

// ResetLogState resets the log command's global state for testing.
func ResetLogState() {
	logVerbose = false
	logDebug = false
	logLimit = 0
	logOperation = ""
	logJSON = false
	resetCobraFlagState(LogCmd)
}

// LogCmd shows the history log.
var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show what has changed and who tried to peek",
	Long: `Shows the history of destination changes and unlock attempts, oldest first.

Answers are never recorded.

Examples:
  keepsake log
  keepsake log -n 5
  keepsake log --op unlock-failed`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		LogLogger = logger.Logger{Verbose: logVerbose, Debug: logDebug}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		LogLogger.Infof("Starting log command")
		LogLogger.Debugf("Reading %s", history.LogPath())

		entries, err := workflows.History(cmd.Context(), workflows.HistoryOptions{
			Limit:     logLimit,
			Operation: logOperation,
		})
		if err != nil {
			return LogLogger.ErrorfAndReturn("Failed to read history: %v", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			if !logJSON {
				fmt.Fprintln(out, ui.Muted.Sprint("no history yet"))
			}
			return nil
		}

		for _, e := range entries {
			if logJSON {
				data, err := json.Marshal(e)
				if err != nil {
					return LogLogger.ErrorfAndReturn("Failed to marshal entry: %v", err)
				}
				fmt.Fprintln(out, string(data))
				continue
			}
			fmt.Fprintln(out, formatEntry(e))
		}
		return nil
	},
}

func formatEntry(e history.Entry) string {
	line := ui.Muted.Sprint(e.Timestamp) + " " + fmt.Sprintf("%-13s", e.Operation)
	switch e.Operation {
	case history.OpAddOption:
		if e.Added {
			return line + " " + ui.Highlight.Sprint(e.Destination) + " (new)"
		}
		return line + " " + ui.Highlight.Sprint(e.Destination)
	case history.OpSelect:
		return line + " " + ui.Highlight.Sprint(e.Destination)
	case history.OpUnlock:
		return line + " " + ui.Success.Sprint(e.Item)
	case history.OpUnlockFailed:
		return line + " " + ui.Error.Sprint(e.Item)
	}
	return line
}
