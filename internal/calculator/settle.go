package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/models"
)

// Settle computes a minimal set of transfers that clears all debts.
//
// Algorithm (greedy largest-first matching):
//   - Round every balance to 2 decimal places; drop anyone within ±0.01 of
//     zero, they are already settled.
//   - Split the rest into debtors (negative, tracked as positive owed
//     amounts) and creditors (positive), each sorted descending. The sort
//     is stable, so equal amounts keep the snapshot's order.
//   - Repeatedly match the current largest debtor against the current
//     largest creditor, transfer min(owed, due), and advance whichever
//     side drops below 0.01.
//
// The snapshot should be in registry insertion order; that makes the
// tie-break, and therefore the output, deterministic. At most
// len(debtors)+len(creditors)-1 transfers are emitted.
//
// The settled flag distinguishes "everyone was already at zero" from an
// empty transfer list a caller never asked for.
func Settle(snapshot []models.Member) (transfers []models.Transfer, settled bool) {
	type party struct {
		name   string
		amount decimal.Decimal
	}

	var debtors, creditors []party
	for _, m := range snapshot {
		bal := m.Balance.Round(2)
		if bal.Abs().LessThan(models.Epsilon) {
			continue
		}
		if bal.Sign() > 0 {
			creditors = append(creditors, party{m.Name, bal})
		} else {
			debtors = append(debtors, party{m.Name, bal.Neg()})
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].amount.GreaterThan(debtors[j].amount)
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].amount.GreaterThan(creditors[j].amount)
	})

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amt := decimal.Min(debtors[i].amount, creditors[j].amount)
		transfers = append(transfers, models.Transfer{
			From:   debtors[i].name,
			To:     creditors[j].name,
			Amount: amt,
		})
		debtors[i].amount = debtors[i].amount.Sub(amt)
		creditors[j].amount = creditors[j].amount.Sub(amt)
		if debtors[i].amount.LessThan(models.Epsilon) {
			i++
		}
		if creditors[j].amount.LessThan(models.Epsilon) {
			j++
		}
	}

	return transfers, len(transfers) == 0
}
