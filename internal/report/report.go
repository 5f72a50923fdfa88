// Package report renders ledger snapshots as display text and table rows.
// Everything here is a pure formatter: it consumes immutable snapshots and
// never reaches into the ledger's internal representation.
package report

import (
	"fmt"
	"iter"
	"strings"

	"github.com/smartsplit/smartsplit/internal/models"
)

// Balances renders the running balance of every member, one line each:
// the name padded to at least 10 characters, then an explicit sign, the
// currency symbol, and the absolute value to 2 decimals.
func Balances(members []models.Member, currency string) string {
	var b strings.Builder
	b.WriteString("Final Balances:\n")
	for _, m := range members {
		sign := "+"
		if m.Balance.Sign() < 0 {
			sign = "-"
		}
		fmt.Fprintf(&b, "%-10s: %s%s%s\n", m.Name, sign, currency, m.Balance.Abs().StringFixed(2))
	}
	return b.String()
}

// Members renders the member list in registry order.
func Members(names []string) string {
	if len(names) == 0 {
		return "No members yet."
	}
	return "Members:\n" + strings.Join(names, "\n")
}

// History renders the expense log, one numbered line per expense.
func History(entries iter.Seq2[int, models.Expense], currency string) string {
	var b strings.Builder
	for i, e := range entries {
		if b.Len() == 0 {
			b.WriteString("Expense History:\n")
		}
		fmt.Fprintf(&b, "[%d] %s | %s paid %s%s (%s) split among %s\n",
			i+1,
			e.Date.Format(models.DateFormat),
			e.Payer,
			currency,
			e.Amount.StringFixed(2),
			e.Description,
			strings.Join(e.SharedWith, ", "),
		)
	}
	if b.Len() == 0 {
		return "No expenses recorded."
	}
	return b.String()
}

// SettleUp renders transfer instructions, or an explicit all-settled
// message when there is nothing to pay.
func SettleUp(transfers []models.Transfer, settled bool, currency string) string {
	if settled {
		return "Everyone is settled up!"
	}
	lines := make([]string, 0, len(transfers))
	for _, t := range transfers {
		lines = append(lines, fmt.Sprintf("%s pays %s %s%s", t.From, t.To, currency, t.Amount.StringFixed(2)))
	}
	return "Settle Up Suggestions:\n" + strings.Join(lines, "\n")
}

// TableRows converts expenses into display rows: date, payer, formatted
// amount, comma-joined sharers, description. The comma join is display
// only; the archive uses a different delimiter to stay parseable.
func TableRows(expenses []models.Expense, currency string) [][]string {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Date.Format(models.DateFormat),
			e.Payer,
			currency + e.Amount.StringFixed(2),
			strings.Join(e.SharedWith, ", "),
			e.Description,
		})
	}
	return rows
}

// Shares renders each member's share of the total spend.
func Shares(shares []models.Share, currency string) string {
	if len(shares) == 0 {
		return "No expenses recorded."
	}
	var b strings.Builder
	b.WriteString("Share of Total Expenses:\n")
	for _, s := range shares {
		fmt.Fprintf(&b, "%-10s: %s%s\n", s.Name, currency, s.Total.StringFixed(2))
	}
	return b.String()
}
