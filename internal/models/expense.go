package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the timestamp layout used for display and the CSV archive.
const DateFormat = "2006-01-02 15:04"

// Expense represents a single payment by one member, split equally among
// the members listed in SharedWith.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Deletion is positional, but the ID keeps rows stable for callers
	// holding an earlier listing.
	ID string

	// Payer is the name of the member who paid. Must exist in the registry
	// at the time the expense is recorded.
	Payer string

	// Amount is the full amount paid.
	Amount decimal.Decimal

	// SharedWith lists the members the amount is split among, in the order
	// given by the caller. It may include the payer.
	SharedWith []string

	// Description is optional free text.
	Description string

	// Date is when the expense was recorded, or the archived timestamp
	// when loaded from a CSV archive.
	Date time.Time
}

// SplitAmount returns the equal share each participant bears.
func (e Expense) SplitAmount() decimal.Decimal {
	return e.Amount.Div(decimal.NewFromInt(int64(len(e.SharedWith))))
}
