package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/reveal"
	"github.com/PolarWolf314/keepsake/internal/ui"
	"github.com/PolarWolf314/keepsake/internal/utils"
	"github.com/PolarWolf314/keepsake/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	unlockAnswers  []string
	unlockNoBanner bool
)

func init() {
	revealUnlockCmd.Flags().StringArrayVarP(&unlockAnswers, "answer", "a", nil, "answer to try (repeatable); skips the prompt")
	revealUnlockCmd.Flags().BoolVar(&unlockNoBanner, "no-banner", false, "do not print the celebration banner")
}

// resetRevealUnlockState resets the unlock command's global state for testing.
func resetRevealUnlockState() {
	unlockAnswers = nil
	unlockNoBanner = false
}

var revealUnlockCmd = &cobra.Command{
	Use:   "unlock <item>",
	Short: "Answer the question that opens a hidden item",
	Long: `Asks for the answer to an item's question until it is right.

On a terminal the answer is not echoed. When input is piped, each line is
one try. With --answer the given answers are tried in order instead.

Items: ` + itemNames(),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		RevealLogger.Infof("Starting reveal unlock command")
		out := cmd.OutOrStdout()

		gate, _, err := workflows.LoadGate(cmd.Context())
		if err != nil {
			return RevealLogger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		result, err := workflows.Unlock(cmd.Context(), gate, workflows.UnlockOptions{
			Item: args[0],
			Next: answerSource(cmd),
			OnIncorrect: func(attempts int) {
				RevealLogger.Debugf("Incorrect answer (attempt %d)", attempts)
				fmt.Fprintln(out, ui.Error.Sprint("✗")+" Not quite. Try again.")
			},
		})
		switch {
		case errors.Is(err, kerrors.ErrUnknownItem):
			fmt.Fprintln(out, ui.Error.Sprint("✗")+" Unknown item "+ui.Highlight.Sprint(args[0]))
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Items: "+itemNames())
			return nil
		case errors.Is(err, kerrors.ErrItemNotConfigured):
			fmt.Fprintln(out, ui.Error.Sprint("✗")+" Item "+ui.Highlight.Sprint(args[0])+" has no answer configured")
			return nil
		case err != nil:
			return RevealLogger.ErrorfAndReturn("Failed to unlock %s: %v", args[0], err)
		}

		if !result.Unlocked {
			RevealLogger.Infof("Gave up after %d attempts", result.Attempts)
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Still hidden: "+ui.Redacted.Sprint(reveal.Placeholder))
			return nil
		}

		RevealLogger.Infof("Unlocked %s after %d attempts", result.Item, result.Attempts)
		if !unlockNoBanner {
			printBanner(out, "Sim!")
		}
		fmt.Fprintln(out, ui.Success.Sprint("✓")+" "+ui.Highlight.Sprint(result.Item)+": "+result.Value)
		return nil
	},
}

// answerSource picks where attempts come from: --answer flags, a hidden
// terminal prompt, or lines of piped input.
func answerSource(cmd *cobra.Command) func(hint string) (string, error) {
	if len(unlockAnswers) > 0 {
		queue := append([]string(nil), unlockAnswers...)
		return func(string) (string, error) {
			if len(queue) == 0 {
				return "", kerrors.ErrNoInput
			}
			next := queue[0]
			queue = queue[1:]
			return next, nil
		}
	}

	if in, ok := cmd.InOrStdin().(*os.File); ok && in == os.Stdin && utils.IsTerminal() {
		return func(hint string) (string, error) {
			return utils.ReadPassphrase(hint + " ")
		}
	}

	lines := utils.NewLineReader(cmd.InOrStdin())
	return func(hint string) (string, error) {
		RevealLogger.Debugf("Reading answer for %q from input", hint)
		return lines.ReadLine()
	}
}

func itemNames() string {
	names := make([]string, len(reveal.KnownItems))
	for i, id := range reveal.KnownItems {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
