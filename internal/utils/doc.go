// Package utils provides terminal and input helpers for keepsake commands.
//
//   - ReadPassphrase: hidden passphrase prompt on a terminal
//   - IsTerminal: checks whether stdin is a terminal
//   - LineReader: reads answers one line at a time from piped input
package utils
