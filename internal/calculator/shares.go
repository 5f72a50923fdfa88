package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/models"
)

// TotalShares sums each person's equal share across all expenses, in order
// of first appearance. This is the spend distribution behind the share
// chart: unlike a balance it only grows, since it ignores who paid.
func TotalShares(expenses []models.Expense) []models.Share {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range expenses {
		split := e.SplitAmount()
		for _, name := range e.SharedWith {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name] = totals[name].Add(split)
		}
	}

	shares := make([]models.Share, 0, len(order))
	for _, name := range order {
		shares = append(shares, models.Share{Name: name, Total: totals[name]})
	}
	return shares
}
