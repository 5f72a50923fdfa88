// Package storage provides abstractions for the flat-file archive.
package storage

import "github.com/smartsplit/smartsplit/internal/models"

// Archiver defines the interface for exporting and importing ledger data
// as flat files. This abstraction keeps the ledger and the presentation
// layer independent of the on-disk format.
type Archiver interface {
	// WriteExpenses writes the expense log to the given path, one row per
	// expense.
	WriteExpenses(path string, expenses []models.Expense) error

	// ReadExpenses parses the file at the given path back into expenses.
	// A malformed row fails the whole read; nothing is partially loaded.
	ReadExpenses(path string) ([]models.Expense, error)

	// WriteReport writes already rendered report text to the given path.
	WriteReport(path string, content string) error
}
