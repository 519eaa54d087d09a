package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/keepsake/internal/configs"
	"github.com/PolarWolf314/keepsake/internal/ui"

	"github.com/spf13/cobra"
)

var (
	configShowJSON    bool
	configShowSecrets bool
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configShowCmd.Flags().BoolVar(&configShowSecrets, "show-secrets", false, "include answers and hidden values")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
	configShowSecrets = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the configuration in use.

Answers and hidden values are masked unless --show-secrets is given.

Examples:
  keepsake config show
  keepsake config show --json --show-secrets`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Flags: json=%t, show-secrets=%t", configShowJSON, configShowSecrets)

		exists, err := configs.ConfigExists()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to check config: %v", err)
		}
		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load config: %v", err)
		}
		if !configShowSecrets {
			config = maskConfig(config)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			output, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		source := ui.Path.Sprint(configs.KeepsakeSettings.ConfigPath())
		if !exists {
			source = ui.Muted.Sprint("built-in defaults")
		}
		fmt.Fprintln(out, ui.Info.Sprint("Configuration")+" "+source+":")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-9s %s\n", "Title:", ui.Success.Sprint(config.Page.Title))
		if config.Page.Partner != "" {
			fmt.Fprintf(out, "  %-9s %s\n", "Partner:", ui.Success.Sprint(config.Page.Partner))
		}

		if len(config.Items) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Info.Sprint("Hidden items:"))
			for _, item := range config.Items {
				fmt.Fprintf(out, "  %s %s\n", ui.Highlight.Sprint(item.ID), ui.Muted.Sprint(item.Hint))
				fmt.Fprintf(out, "    answer: %s\n", item.Secret)
				fmt.Fprintf(out, "    value:  %s\n", item.Value)
			}
		}
		return nil
	},
}

// maskConfig returns a copy of config with answers and values redacted.
func maskConfig(config *configs.Config) *configs.Config {
	masked := *config
	masked.Items = make([]configs.ItemConfig, len(config.Items))
	for i, item := range config.Items {
		item.Secret = "******"
		item.Value = "******"
		masked.Items[i] = item
	}
	return &masked
}
