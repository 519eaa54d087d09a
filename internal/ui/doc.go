// Package ui provides semantic text formatting for CLI output.
//
// Formatters render colourised text when the terminal supports it and fall
// back to plain decorations (backticks, quotes, brackets) when NO_COLOR is
// set or colours are unavailable.
//
//	ui.Code.Sprint("keepsake reveal list")  // Commands
//	ui.Highlight.Sprint("Japan")            // User values
//	ui.Selected.Sprint("♥ Europe")          // Current selection
//	ui.Redacted.Sprint("••••••")            // Locked item placeholder
//	ui.Muted.Sprint("hint")                 // De-emphasized text
package ui
