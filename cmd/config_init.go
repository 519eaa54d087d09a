package cmd

import (
	"errors"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration")
}

// resetConfigInitState resets the init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Writes config.toml with the default page details and hidden items.

Edit the file afterwards to change answers, hints and values. An existing
file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		out := cmd.OutOrStdout()

		spinner, cleanup := startSpinner(out, "Writing configuration...", configVerbose, configDebug)
		defer cleanup()

		result, err := workflows.InitConfig(cmd.Context(), workflows.InitOptions{Force: configInitForce})
		if errors.Is(err, kerrors.ErrConfigExists) {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Configuration already exists\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keepsake config init --force") + " to overwrite it"
			return nil
		}
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to write configuration"
			return ConfigLogger.ErrorfAndReturn("Failed to initialize config: %v", err)
		}

		verb := "Created"
		if result.Overwritten {
			verb = "Overwrote"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " " + ui.Path.Sprint(result.ConfigPath)
		return nil
	},
}
