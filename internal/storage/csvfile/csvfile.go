// Package csvfile implements the storage.Archiver interface with CSV files.
//
// The schema is one row per expense with header
// "Date,Payer,Amount,Shared With,Description". Dates use a fixed
// minute-resolution format, amounts are plain decimal numbers with no
// currency symbol, and participants are joined with "|" so the column
// survives names containing the display separator ", ".
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/models"
	"github.com/smartsplit/smartsplit/internal/storage"
)

var (
	// ErrInvalidAmount is returned when a row's amount does not parse as
	// a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDate is returned when a row's date does not match the
	// archive date format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingColumn is returned when the header lacks a required
	// column.
	ErrMissingColumn = errors.New("missing column")
)

// participantSep joins the share set inside a single CSV field.
const participantSep = "|"

var header = []string{"Date", "Payer", "Amount", "Shared With", "Description"}

// Ensure Archive implements storage.Archiver
var _ storage.Archiver = (*Archive)(nil)

// Archive reads and writes the CSV archive format.
type Archive struct{}

// New creates a new Archive.
func New() *Archive {
	return &Archive{}
}

// WriteExpenses writes the expense log to path as CSV.
func (a *Archive) WriteExpenses(path string, expenses []models.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			e.Date.Format(models.DateFormat),
			e.Payer,
			e.Amount.String(),
			strings.Join(e.SharedWith, participantSep),
			e.Description,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush archive: %w", err)
	}
	return f.Close()
}

// ReadExpenses parses the CSV archive at path. Any malformed row fails the
// whole read with the 1-based data row number in the error; the Description
// column is optional and defaults to empty.
func (a *Archive) ReadExpenses(path string) ([]models.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := columnIndexes(records[0])
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	for i, record := range records[1:] {
		row := i + 1
		date, err := time.Parse(models.DateFormat, record[cols.date])
		if err != nil {
			return nil, fmt.Errorf("row %d: date %q: %w", row, record[cols.date], ErrInvalidDate)
		}
		amount, err := decimal.NewFromString(record[cols.amount])
		if err != nil {
			return nil, fmt.Errorf("row %d: amount %q: %w", row, record[cols.amount], ErrInvalidAmount)
		}
		description := ""
		if cols.description >= 0 {
			description = record[cols.description]
		}
		expenses = append(expenses, models.Expense{
			Payer:       record[cols.payer],
			Amount:      amount,
			SharedWith:  strings.Split(record[cols.shared], participantSep),
			Description: description,
			Date:        date,
		})
	}
	return expenses, nil
}

// WriteReport writes rendered report text to path.
func (a *Archive) WriteReport(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

type indexes struct {
	date, payer, amount, shared, description int
}

func columnIndexes(headerRow []string) (indexes, error) {
	cols := indexes{date: -1, payer: -1, amount: -1, shared: -1, description: -1}
	for i, name := range headerRow {
		switch strings.TrimSpace(name) {
		case "Date":
			cols.date = i
		case "Payer":
			cols.payer = i
		case "Amount":
			cols.amount = i
		case "Shared With":
			cols.shared = i
		case "Description":
			cols.description = i
		}
	}
	for _, req := range []struct {
		name  string
		index int
	}{
		{"Date", cols.date},
		{"Payer", cols.payer},
		{"Amount", cols.amount},
		{"Shared With", cols.shared},
	} {
		if req.index < 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, req.name)
		}
	}
	return cols, nil
}
