package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/keepsake/internal/configs"
	"github.com/PolarWolf314/keepsake/internal/history"
	"github.com/PolarWolf314/keepsake/internal/preferences"
)

// OpenDestinations opens the persisted destination store.
func OpenDestinations() *preferences.Store {
	return preferences.Open(preferences.NewFileStorage(configs.KeepsakeSettings.PreferencesPath()))
}

// DestinationsResult contains the destination list after a workflow.
type DestinationsResult struct {
	List preferences.List

	// Changed reports whether the list or selection was written.
	Changed bool

	// Added reports whether a new option was appended.
	Added bool

	// Recovered reports that unreadable stored data was replaced by defaults.
	Recovered bool
}

// ListDestinations returns the current list.
func ListDestinations(ctx context.Context) (*DestinationsResult, error) {
	store := OpenDestinations()
	return &DestinationsResult{List: store.Current(), Recovered: store.Recovered()}, nil
}

// AddDestination adds name to the list and selects it. A blank name is
// reported with Changed set to false and nothing is written.
func AddDestination(ctx context.Context, name string) (*DestinationsResult, error) {
	store := OpenDestinations()
	before := store.Current()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &DestinationsResult{List: before, Recovered: store.Recovered()}, nil
	}

	list, err := store.AddOption(trimmed)
	if err != nil {
		return nil, err
	}

	result := &DestinationsResult{
		List:      list,
		Added:     !before.Contains(trimmed),
		Changed:   true,
		Recovered: store.Recovered(),
	}
	history.Log(history.Entry{Operation: history.OpAddOption, Destination: trimmed, Added: result.Added})
	return result, nil
}

// SelectDestination selects name. Names that are not in the list are
// ignored and reported with Changed set to false.
func SelectDestination(ctx context.Context, name string) (*DestinationsResult, error) {
	store := OpenDestinations()

	if !store.Current().Contains(name) {
		return &DestinationsResult{List: store.Current(), Recovered: store.Recovered()}, nil
	}

	list, err := store.Select(name)
	if err != nil {
		return nil, err
	}
	history.Log(history.Entry{Operation: history.OpSelect, Destination: name})
	return &DestinationsResult{List: list, Changed: true, Recovered: store.Recovered()}, nil
}
