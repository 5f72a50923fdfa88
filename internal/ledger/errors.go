package ledger

import "errors"

var (
	// ErrUnknownPayer is returned by AddExpense when the payer is not in
	// the registry.
	ErrUnknownPayer = errors.New("payer not found")

	// ErrEmptyShareSet is returned by AddExpense when nobody shares the
	// expense.
	ErrEmptyShareSet = errors.New("no people to share the expense")

	// ErrNotFound is returned by RemoveMember for a name not in the
	// registry.
	ErrNotFound = errors.New("member not found")

	// ErrUnsettledBalance is returned by RemoveMember when the member's
	// balance is not within epsilon of zero.
	ErrUnsettledBalance = errors.New("balance not settled")

	// ErrIndexOutOfRange is returned by DeleteExpense for a position
	// outside the current log bounds.
	ErrIndexOutOfRange = errors.New("expense index out of range")
)
