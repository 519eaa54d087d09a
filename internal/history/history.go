package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/keepsake/internal/configs"

	"github.com/google/uuid"
)

// Operation names.
const (
	OpAddOption    = "add-option"
	OpSelect       = "select"
	OpUnlock       = "unlock"
	OpUnlockFailed = "unlock-failed"
	OpInit         = "init"
)

// Entry represents a single history entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Session   string `json:"session"` // ID of the process that wrote it.
	Operation string `json:"op"`

	Item        string `json:"item,omitempty"`        // For unlock attempts.
	Destination string `json:"destination,omitempty"` // For add-option/select.
	Added       bool   `json:"added,omitempty"`       // add-option appended a new option.
}

// SessionID identifies this process in every entry it writes.
var SessionID = uuid.NewString()

// Log appends an entry to the history log, ignoring any failure.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.Session == "" {
		entry.Session = SessionID
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the history log file.
func LogPath() string {
	return configs.KeepsakeSettings.HistoryPath()
}

// ReadEntries reads all entries from the history log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
