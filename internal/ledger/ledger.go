// Package ledger implements the shared-expense ledger: a member registry
// with running balances and an ordered expense log. Every mutation routes
// through the balance calculator so that balances always equal the sum of
// the logged expenses; queries are computed from current state on demand.
package ledger

import (
	"sync"

	"github.com/smartsplit/smartsplit/internal/calculator"
	"github.com/smartsplit/smartsplit/internal/models"
)

// Ledger is the mutable aggregate owning the registry and the expense log.
// All state lives in memory; the CSV archive is the only durable form.
//
// A single RWMutex serializes access: apply/reverse touch several balances
// in sequence and a reader must never observe a half-applied expense.
type Ledger struct {
	mu       sync.RWMutex
	members  map[string]*models.Member
	order    []string // registry insertion order
	expenses []models.Expense
	currency string
}

// New creates an empty ledger. The currency symbol is a display label only;
// it never participates in computation.
func New(currency string) *Ledger {
	return &Ledger{
		members:  make(map[string]*models.Member),
		currency: currency,
	}
}

// SetCurrency replaces the display currency symbol.
func (l *Ledger) SetCurrency(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.currency = symbol
}

// Currency returns the display currency symbol.
func (l *Ledger) Currency() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currency
}

// Clear wipes all members and expenses. The currency symbol survives.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

func (l *Ledger) clearLocked() {
	l.members = make(map[string]*models.Member)
	l.order = nil
	l.expenses = nil
}

// Balances returns a snapshot of every member, in registry insertion order.
func (l *Ledger) Balances() []models.Member {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balancesLocked()
}

func (l *Ledger) balancesLocked() []models.Member {
	snapshot := make([]models.Member, 0, len(l.order))
	for _, name := range l.order {
		snapshot = append(snapshot, *l.members[name])
	}
	return snapshot
}

// SettleUp derives transfer instructions from the current balances. The
// settled flag is true when every balance was already within epsilon of
// zero and there was nothing to emit.
func (l *Ledger) SettleUp() (transfers []models.Transfer, settled bool) {
	l.mu.RLock()
	snapshot := l.balancesLocked()
	l.mu.RUnlock()
	return calculator.Settle(snapshot)
}

// TotalShares returns each member's summed equal share over all expenses,
// in order of first appearance in the log.
func (l *Ledger) TotalShares() []models.Share {
	l.mu.RLock()
	snapshot := l.expensesLocked()
	l.mu.RUnlock()
	return calculator.TotalShares(snapshot)
}
