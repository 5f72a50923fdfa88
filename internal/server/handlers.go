package server

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/report"
)

type memberRequest struct {
	Name string `json:"name"`
}

type expenseRequest struct {
	Payer       string          `json:"payer"`
	Amount      decimal.Decimal `json:"amount"`
	SharedWith  []string        `json:"shared_with"`
	Description string          `json:"description"`
}

type pathRequest struct {
	Path string `json:"path"`
}

type currencyRequest struct {
	Currency string `json:"currency"`
}

type balanceResponse struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type transferResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	names := s.ledger.Members()
	writeJSON(w, http.StatusOK, map[string]any{
		"members": names,
		"report":  report.Members(names),
	})
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name must not be empty"})
		return
	}
	s.ledger.AddMember(req.Name)
	s.syncGauges()
	writeJSON(w, http.StatusOK, map[string]any{"members": s.ledger.Members()})
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.ledger.RemoveMember(name); err != nil {
		writeError(w, err)
		return
	}
	s.syncGauges()
	writeJSON(w, http.StatusOK, map[string]any{"members": s.ledger.Members()})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows": report.TableRows(s.ledger.Expenses(), s.ledger.Currency()),
	})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount.Sign() <= 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "amount must be positive"})
		return
	}

	expense, warnings, err := s.ledger.AddExpense(req.Payer, req.Amount, req.SharedWith, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.ExpensesAdded.Inc()
	s.syncGauges()

	warningTexts := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		warningTexts = append(warningTexts, warning.String())
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"expense_id": expense.ID,
		"warnings":   warningTexts,
	})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "index must be a number"})
		return
	}
	if err := s.ledger.DeleteExpense(index); err != nil {
		writeError(w, err)
		return
	}
	s.metrics.ExpensesDeleted.Inc()
	s.syncGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ledger.Balances()
	balances := make([]balanceResponse, 0, len(snapshot))
	for _, m := range snapshot {
		balances = append(balances, balanceResponse{Name: m.Name, Balance: m.Balance})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"currency": s.ledger.Currency(),
		"balances": balances,
		"report":   report.Balances(snapshot, s.ledger.Currency()),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"report": report.History(s.ledger.History(), s.ledger.Currency()),
	})
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	transfers, settled := s.ledger.SettleUp()
	out := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, transferResponse{From: t.From, To: t.To, Amount: t.Amount})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"settled":   settled,
		"transfers": out,
		"report":    report.SettleUp(transfers, settled, s.ledger.Currency()),
	})
}

func (s *Server) handleShares(w http.ResponseWriter, r *http.Request) {
	shares := s.ledger.TotalShares()
	out := make([]map[string]any, 0, len(shares))
	for _, share := range shares {
		out = append(out, map[string]any{"name": share.Name, "total": share.Total})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"shares": out,
		"report": report.Shares(shares, s.ledger.Currency()),
	})
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	var req currencyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Currency == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "currency must not be empty"})
		return
	}
	s.ledger.SetCurrency(req.Currency)
	writeJSON(w, http.StatusOK, map[string]string{"currency": s.ledger.Currency()})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.ledger.Clear()
	s.syncGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.archive.WriteExpenses(req.Path, s.ledger.Expenses()); err != nil {
		writeError(w, err)
		return
	}
	s.metrics.ArchiveExports.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"path": req.Path})
}

// handleImport fully replaces ledger state from a CSV archive. The clear
// happens before the file is read: a malformed archive leaves the ledger
// empty rather than half-populated, and the response says which row broke.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.ledger.Clear()
	expenses, err := s.archive.ReadExpenses(req.Path)
	if err != nil {
		s.syncGauges()
		writeError(w, err)
		return
	}
	s.ledger.Restore(expenses)
	s.metrics.ArchiveImports.Inc()
	s.syncGauges()
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": len(expenses),
		"members":  s.ledger.Members(),
	})
}

func (s *Server) handleExportBalances(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	text := report.Balances(s.ledger.Balances(), s.ledger.Currency())
	if err := s.archive.WriteReport(req.Path, text); err != nil {
		writeError(w, err)
		return
	}
	s.metrics.ArchiveExports.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"path": req.Path})
}
