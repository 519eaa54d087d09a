package workflows

import (
	"context"

	"github.com/PolarWolf314/keepsake/internal/history"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit keeps only the most recent entries. Zero means all.
	Limit int

	// Operation filters by operation name when set.
	Operation string
}

// History reads the history log, oldest first.
func History(ctx context.Context, opts HistoryOptions) ([]history.Entry, error) {
	entries, err := history.ReadEntries()
	if err != nil {
		return nil, err
	}

	if opts.Operation != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Operation == opts.Operation {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}
	return entries, nil
}
