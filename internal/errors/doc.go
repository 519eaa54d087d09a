// Package errors provides typed error values for the keepsake application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Reveal errors: the gated item is unknown or unconfigured (ErrUnknownItem)
//   - Configuration errors: config.toml is missing or invalid (ErrInvalidConfig)
//   - Storage errors: preference storage failed (ErrStorageWrite)
//   - Input errors: unusable user input (ErrNoInput)
//
// An incorrect passphrase is deliberately absent from this list. It is an
// expected outcome of reveal.Gate.RequestUnlock, not an error.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("writing %s: %w", key, errors.ErrStorageWrite)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrUnknownItem) {
//	    // List the valid item names
//	}
package errors
