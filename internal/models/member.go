package models

import "github.com/shopspring/decimal"

// Member represents one participant in the group.
type Member struct {
	// Name is the unique identifier and display key for the member.
	Name string

	// Balance is the signed net amount: positive means the group owes this
	// member, negative means this member owes the group. It is the sum of
	// the signed contributions of every expense currently in the log that
	// references this member.
	Balance decimal.Decimal
}

// Settled reports whether the balance is within epsilon of zero.
// A member may only be removed from the registry while settled.
func (m Member) Settled() bool {
	return m.Balance.Abs().LessThan(Epsilon)
}

// Epsilon is the tolerance below which a balance counts as settled.
var Epsilon = decimal.New(1, -2) // 0.01 currency units
