package cmd

import (
	"fmt"

	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var revealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the hidden items and their hints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		RevealLogger.Infof("Starting reveal list command")

		gate, config, err := workflows.LoadGate(cmd.Context())
		if err != nil {
			return RevealLogger.ErrorfAndReturn("Failed to load config: %v", err)
		}
		RevealLogger.Debugf("Loaded %d gated items for %q", len(config.Items), config.Page.Title)

		out := cmd.OutOrStdout()
		statuses := workflows.Reveal(cmd.Context(), gate)
		if len(statuses) == 0 {
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Nothing is hidden.")
			return nil
		}

		for _, s := range statuses {
			value := ui.Redacted.Sprint(s.Display)
			if s.Unlocked {
				value = ui.Success.Sprint(s.Display)
			}
			fmt.Fprintf(out, "%-18s %s\n", ui.Highlight.Sprint(s.ID), value)
			if s.Hint != "" {
				fmt.Fprintf(out, "%-18s %s\n", "", ui.Muted.Sprint(s.Hint))
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("keepsake reveal unlock <item>")+" to answer")
		return nil
	},
}
