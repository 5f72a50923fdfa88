package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer represents one settle-up instruction: From pays To the Amount.
type Transfer struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// Share is one member's portion of the total spend across all expenses.
type Share struct {
	Name  string
	Total decimal.Decimal
}

// Warning reports a non-fatal inconsistency noticed while applying an
// expense: a name in the share set that is absent from the registry. The
// expense is still recorded; the absent participant's share is skipped.
type Warning struct {
	Participant string
}

func (w Warning) String() string {
	return fmt.Sprintf("member %q not found, share skipped", w.Participant)
}
