// Package history records what happened to the keepsake state.
//
// Preference changes and unlock attempts are appended to a JSON Lines file
// in the data directory:
//
//	<data dir>/history.jsonl
//
// Each entry carries a timestamp (RFC3339 with microseconds, UTC), the
// session ID of the process that wrote it and operation details. Attempted
// passphrases are never written.
//
// # Failure Handling
//
// Logging is best-effort. A history entry that cannot be written never
// fails the operation it describes.
//
// # Reading
//
// ReadEntries parses the log; malformed lines are skipped so a partial
// write does not hide the rest of the history.
package history
