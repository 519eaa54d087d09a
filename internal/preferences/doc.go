// Package preferences keeps the honeymoon destination list and the current
// pick, persisted after every change.
//
// State lives behind a Storage, a string key/value interface shaped like
// browser local storage. Two keys are used so existing browser state can be
// imported as is:
//
//	honeymoonOptions   JSON array of destination names
//	selectedHoneymoon  the chosen name, empty for none
//
// Missing or unreadable state falls back to DefaultOptions with nothing
// selected. Every mutation is written before the call returns and no-op
// calls write nothing.
package preferences
