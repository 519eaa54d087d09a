// Package workflows provides high-level orchestration for keepsake commands.
//
// Workflows coordinate configs, reveal, preferences and history to
// implement complete user-facing features. They do not print anything;
// the cmd/ package parses flags, calls a workflow and formats its result.
//
// # Available Workflows
//
//   - LoadGate: builds the session's reveal.Gate from config.toml
//   - Unlock: feeds passphrase attempts to the gate until one matches
//   - Reveal: reports every gated item as locked or unlocked
//   - ListDestinations, AddDestination, SelectDestination: the honeymoon picker
//   - InitConfig: writes the default config.toml
//   - History: reads the history log
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. A wrong
// passphrase is not an error: Unlock reports it through its result and
// keeps asking.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Unlock checks it between attempts.
package workflows
