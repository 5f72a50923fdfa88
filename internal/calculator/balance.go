// Package calculator holds the pure money math: applying and reversing an
// expense's effect on balances, and deriving settle-up transfers.
package calculator

import (
	"github.com/smartsplit/smartsplit/internal/models"
)

// Apply adds one expense's effect to the given balances, person by person:
//   - the payer, when present in the share set, gains amount - split
//   - every other sharer loses split
//
// A sharer with no entry in members is skipped and reported as a warning;
// the rest of the expense still applies. Callers record the expense either
// way, which is what keeps the log authoritative over the balances.
func Apply(members map[string]*models.Member, e models.Expense) []models.Warning {
	return walk(members, e, false)
}

// Reverse subtracts one expense's effect from the given balances. It is the
// exact algebraic inverse of Apply: as long as the registry membership for
// the expense's participants did not change in between, reversing restores
// every touched balance to its pre-apply value exactly.
func Reverse(members map[string]*models.Member, e models.Expense) []models.Warning {
	return walk(members, e, true)
}

func walk(members map[string]*models.Member, e models.Expense, reverse bool) []models.Warning {
	split := e.SplitAmount()
	var warnings []models.Warning
	for _, person := range e.SharedWith {
		member, ok := members[person]
		if !ok {
			warnings = append(warnings, models.Warning{Participant: person})
			continue
		}
		delta := split.Neg()
		if person == e.Payer {
			delta = e.Amount.Sub(split)
		}
		if reverse {
			delta = delta.Neg()
		}
		member.Balance = member.Balance.Add(delta)
	}
	return warnings
}
