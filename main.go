package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/keepsake/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keepsake",
	Short: "keepsake - the hidden answers and honeymoon picker behind a 6-month anniversary page.",
	Long: `keepsake keeps the two pieces of state behind the anniversary page:
the hidden facts that open with the right answer, and the honeymoon
destination list.

Usage:
  keepsake <command> [flags]

Available Commands:
  reveal        Show or unlock the hidden parts of the page
  destinations  Pick the honeymoon destination
  config        Manage keepsake configuration
  log           Show what has changed

Run 'keepsake help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("6 meses", "", "purple", true).Print()
		fmt.Println("Welcome to keepsake! Run 'keepsake --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.RevealCmd)
	rootCmd.AddCommand(cmd.DestinationsCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.LogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
