package ledger

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/calculator"
	"github.com/smartsplit/smartsplit/internal/models"
)

// AddExpense records a new expense and applies its effect to the balances.
// It fails with ErrUnknownPayer or ErrEmptyShareSet before any state is
// touched. Sharers absent from the registry do not block the operation:
// the expense is still logged, their share is skipped, and each is
// reported in the returned warnings.
func (l *Ledger) AddExpense(payer string, amount decimal.Decimal, sharedWith []string, description string) (models.Expense, []models.Warning, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.members[payer]; !exists {
		return models.Expense{}, nil, fmt.Errorf("add expense: payer %q: %w", payer, ErrUnknownPayer)
	}
	if len(sharedWith) == 0 {
		return models.Expense{}, nil, fmt.Errorf("add expense: %w", ErrEmptyShareSet)
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Payer:       payer,
		Amount:      amount,
		SharedWith:  append([]string(nil), sharedWith...),
		Description: description,
		Date:        time.Now(),
	}
	l.expenses = append(l.expenses, expense)
	warnings := calculator.Apply(l.members, expense)
	for _, w := range warnings {
		slog.Warn("Missing participant", "expense_id", expense.ID, "participant", w.Participant)
	}
	slog.Info("Expense added",
		"expense_id", expense.ID,
		"payer", payer,
		"amount", amount,
		"shared_with", len(sharedWith),
	)
	return expense, warnings, nil
}

// DeleteExpense removes the expense at the given zero-based position,
// reversing its balance effect first. Fails with ErrIndexOutOfRange when
// the position is outside the current log bounds.
func (l *Ledger) DeleteExpense(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.expenses) {
		return fmt.Errorf("delete expense %d: %w", index, ErrIndexOutOfRange)
	}
	expense := l.expenses[index]
	calculator.Reverse(l.members, expense)
	l.expenses = append(l.expenses[:index], l.expenses[index+1:]...)
	slog.Info("Expense deleted", "expense_id", expense.ID, "index", index)
	return nil
}

// Expenses returns a snapshot of the log in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.expensesLocked()
}

func (l *Ledger) expensesLocked() []models.Expense {
	snapshot := make([]models.Expense, len(l.expenses))
	copy(snapshot, l.expenses)
	return snapshot
}

// History returns the log as a restartable sequence over a snapshot taken
// at call time, yielding each expense with its zero-based position.
func (l *Ledger) History() iter.Seq2[int, models.Expense] {
	snapshot := l.Expenses()
	return func(yield func(int, models.Expense) bool) {
		for i, e := range snapshot {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Restore replaces the entire ledger state with the given expenses,
// equivalent to Clear followed by replaying each expense. Every referenced
// member, payer and sharer alike, is created with a zero balance before
// the expense applies, so a restore never produces warnings.
func (l *Ledger) Restore(expenses []models.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearLocked()
	for _, e := range expenses {
		l.addMemberLocked(e.Payer)
		for _, name := range e.SharedWith {
			l.addMemberLocked(name)
		}
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.SharedWith = append([]string(nil), e.SharedWith...)
		l.expenses = append(l.expenses, e)
		calculator.Apply(l.members, e)
	}
	slog.Info("Ledger restored", "expenses", len(expenses), "members", len(l.order))
}
