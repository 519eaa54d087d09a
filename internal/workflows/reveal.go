package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/keepsake/internal/configs"
	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/history"
	"github.com/PolarWolf314/keepsake/internal/reveal"
)

// LoadGate builds a gate over the configured items.
func LoadGate(ctx context.Context) (*reveal.Gate, *configs.Config, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return reveal.NewGate(config.GatedItems()...), config, nil
}

// UnlockOptions configures the unlock workflow.
type UnlockOptions struct {
	// Item is the name of the gated item.
	Item string

	// Next supplies the next attempt. Returning ErrNoInput ends the
	// workflow without unlocking.
	Next func(hint string) (string, error)

	// OnIncorrect is called after each wrong attempt. Optional.
	OnIncorrect func(attempts int)
}

// UnlockResult contains the outcome of an unlock workflow.
type UnlockResult struct {
	Item     reveal.ItemID
	Unlocked bool

	// Attempts counts every attempt made, including the successful one.
	Attempts int

	// Value is the revealed value, empty while locked.
	Value string
}

// Unlock asks for attempts until one opens the item or input runs out.
// There is no retry limit.
//
// Returns ErrUnknownItem for names outside the known items and
// ErrItemNotConfigured for known items without a configured secret.
func Unlock(ctx context.Context, gate *reveal.Gate, opts UnlockOptions) (*UnlockResult, error) {
	id, err := reveal.ParseItemID(opts.Item)
	if err != nil {
		return nil, err
	}
	hint, err := gate.Hint(id)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, kerrors.ErrItemNotConfigured)
	}

	result := &UnlockResult{Item: id}
	for !gate.IsUnlocked(id) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		attempt, err := opts.Next(hint)
		if errors.Is(err, kerrors.ErrNoInput) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("reading attempt: %w", err)
		}
		result.Attempts++

		outcome, err := gate.RequestUnlock(id, attempt)
		if err != nil {
			return result, err
		}
		if outcome == reveal.IncorrectSecret {
			history.Log(history.Entry{Operation: history.OpUnlockFailed, Item: string(id)})
			if opts.OnIncorrect != nil {
				opts.OnIncorrect(result.Attempts)
			}
			continue
		}
		history.Log(history.Entry{Operation: history.OpUnlock, Item: string(id)})
	}

	result.Unlocked = true
	result.Value = gate.Display(id)
	return result, nil
}

// ItemStatus describes one gated item for display.
type ItemStatus struct {
	ID       reveal.ItemID
	Hint     string
	Unlocked bool

	// Display is the value when unlocked and reveal.Placeholder otherwise.
	Display string
}

// Reveal lists every configured item with its current state.
func Reveal(ctx context.Context, gate *reveal.Gate) []ItemStatus {
	ids := gate.Items()
	statuses := make([]ItemStatus, 0, len(ids))
	for _, id := range ids {
		hint, _ := gate.Hint(id)
		statuses = append(statuses, ItemStatus{
			ID:       id,
			Hint:     hint,
			Unlocked: gate.IsUnlocked(id),
			Display:  gate.Display(id),
		})
	}
	return statuses
}
