package reveal

import (
	"fmt"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
)

// ItemID names a gated item.
type ItemID string

const (
	EngagementDate ItemID = "engagement-date"
	WeddingDate    ItemID = "wedding-date"
	ProposalPlan   ItemID = "proposal-plan"
	Future         ItemID = "future"
)

// KnownItems lists every gated item in display order.
var KnownItems = []ItemID{EngagementDate, WeddingDate, ProposalPlan, Future}

// ParseItemID resolves a name to one of the known items.
func ParseItemID(name string) (ItemID, error) {
	for _, id := range KnownItems {
		if string(id) == name {
			return id, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, kerrors.ErrUnknownItem)
}

// Item is a fact hidden behind a passphrase.
type Item struct {
	ID             ItemID
	RequiredSecret string
	Hint           string
	Value          string
}
