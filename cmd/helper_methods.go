package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/keepsake/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

// startSpinner creates and starts a spinner with the given message unless
// verbose or debug output is on. The returned cleanup stops it and prints
// s.FinalMSG to out.
//
// spinner.FinalMSG values do NOT need trailing newlines; cleanup adds one.
func startSpinner(out io.Writer, message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("magenta")

	quiet := !verbose && !debugFlag
	if quiet {
		s.Start()
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// printBanner writes phrase as ASCII art.
func printBanner(out io.Writer, phrase string) {
	banner := figure.NewFigure(phrase, "", true)
	fmt.Fprintln(out, ui.Success.Sprint(banner.String()))
}
