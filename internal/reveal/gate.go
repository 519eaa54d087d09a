package reveal

import (
	"fmt"
	"strings"
	"unicode"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
)

// Placeholder is shown in place of a locked item's value.
const Placeholder = "••••••"

// Outcome is the result of an unlock attempt.
type Outcome int

const (
	IncorrectSecret Outcome = iota
	Unlocked
)

func (o Outcome) String() string {
	if o == Unlocked {
		return "unlocked"
	}
	return "incorrect"
}

// Gate tracks which items have been unlocked in the current session.
// It is not safe for concurrent use.
type Gate struct {
	order    []ItemID
	items    map[ItemID]Item
	unlocked map[ItemID]bool
}

// NewGate builds a gate over items. A later item with the same ID replaces
// an earlier one but keeps its position.
func NewGate(items ...Item) *Gate {
	g := &Gate{
		items:    make(map[ItemID]Item, len(items)),
		unlocked: make(map[ItemID]bool, len(items)),
	}
	for _, item := range items {
		if _, seen := g.items[item.ID]; !seen {
			g.order = append(g.order, item.ID)
		}
		g.items[item.ID] = item
	}
	return g
}

// Items returns the configured item IDs in order.
func (g *Gate) Items() []ItemID {
	out := make([]ItemID, len(g.order))
	copy(out, g.order)
	return out
}

// IsUnlocked reports whether id was unlocked in this session.
func (g *Gate) IsUnlocked(id ItemID) bool {
	return g.unlocked[id]
}

// RequestUnlock compares attempt with the item's secret after normalizing
// both. A mismatch leaves the gate untouched and may be retried freely.
func (g *Gate) RequestUnlock(id ItemID, attempt string) (Outcome, error) {
	item, ok := g.items[id]
	if !ok {
		return IncorrectSecret, fmt.Errorf("%q: %w", id, kerrors.ErrUnknownItem)
	}
	if Normalize(attempt) != Normalize(item.RequiredSecret) {
		return IncorrectSecret, nil
	}
	g.unlocked[id] = true
	return Unlocked, nil
}

// Hint returns the prompt shown for id.
func (g *Gate) Hint(id ItemID) (string, error) {
	item, ok := g.items[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, kerrors.ErrUnknownItem)
	}
	return item.Hint, nil
}

// Display returns the item's value once unlocked and Placeholder otherwise.
func (g *Gate) Display(id ItemID) string {
	if !g.unlocked[id] {
		return Placeholder
	}
	return g.items[id].Value
}

// Normalize trims s, removes all whitespace and lower-cases the rest.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}
