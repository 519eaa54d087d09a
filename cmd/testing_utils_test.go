package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/PolarWolf314/keepsake/internal/configs"

	"github.com/spf13/cobra"
)

// setupTestEnvironment points keepsake at a temporary home and disables colour.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("NO_COLOR", "1")

	original := configs.KeepsakeSettings
	configs.KeepsakeSettings = &configs.Settings{ConfigDir: tempDir, DataDir: tempDir}
	t.Cleanup(func() {
		configs.KeepsakeSettings = original
	})
	return tempDir
}

// createTestCLI creates a complete CLI instance for testing with the given arguments.
func createTestCLI(args []string, stdin io.Reader, stdout io.Writer) *cobra.Command {
	ResetRevealState()
	ResetDestinationsState()
	ResetConfigState()
	ResetLogState()

	rootCmd := &cobra.Command{
		Use:   "keepsake",
		Short: "keepsake - the hidden answers and honeymoon picker behind a 6-month anniversary page.",
	}
	rootCmd.AddCommand(RevealCmd)
	rootCmd.AddCommand(DestinationsCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(LogCmd)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stdout)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes args and returns everything written to stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := createTestCLI(args, strings.NewReader(stdin), &out).Execute()
	return out.String(), err
}
