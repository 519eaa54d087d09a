package errors

import "errors"

// Reveal errors indicate a request for a gated item the gate cannot serve.
var (
	// ErrUnknownItem indicates the item name is not one of the known gated items.
	ErrUnknownItem = errors.New("unknown gated item")

	// ErrItemNotConfigured indicates the item is known but has no secret configured.
	ErrItemNotConfigured = errors.New("gated item is not configured")
)

// Configuration errors indicate issues with the keepsake configuration file.
var (
	// ErrConfigExists indicates a configuration file already exists.
	ErrConfigExists = errors.New("configuration file already exists")

	// ErrInvalidConfig indicates the configuration is malformed or inconsistent.
	ErrInvalidConfig = errors.New("configuration is invalid")
)

// Storage errors indicate the preference storage could not be read or written.
var (
	// ErrStorageRead indicates persisted preferences could not be read.
	ErrStorageRead = errors.New("failed to read preference storage")

	// ErrStorageWrite indicates a preference mutation could not be persisted.
	ErrStorageWrite = errors.New("failed to write preference storage")
)

// Input errors indicate user-supplied values that cannot be used.
var (
	// ErrNoInput indicates input ended before a passphrase was supplied.
	ErrNoInput = errors.New("no passphrase provided")
)
