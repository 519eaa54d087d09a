// Package reveal decides whether a gated fact may be shown.
//
// A Gate holds one session's unlock state for a fixed set of items. Each
// item carries the secret that opens it, a hint that is safe to show, and
// the value displayed once it is open. Unlocking is one-way for the life
// of the Gate and nothing is persisted.
//
// Attempts are compared after Normalize, which trims, drops every
// whitespace rune and lower-cases both sides, so "  Quer Casar Comigo?  "
// opens an item whose secret is "quercasarcomigo?".
//
// A wrong attempt is reported as IncorrectSecret, a normal Outcome. The
// only error RequestUnlock returns is for an item the gate does not know.
package reveal
