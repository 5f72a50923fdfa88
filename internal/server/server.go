// Package server exposes the ledger over a small HTTP/JSON API. It is a
// thin presentation wrapper: every handler calls a core operation and
// renders its result or error, nothing more.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartsplit/smartsplit/internal/ledger"
	"github.com/smartsplit/smartsplit/internal/storage"
)

// Server routes HTTP requests to ledger operations.
type Server struct {
	ledger  *ledger.Ledger
	archive storage.Archiver
	metrics *Metrics
	mux     *http.ServeMux
}

// New creates a Server over the given ledger and archive backend.
func New(lgr *ledger.Ledger, archive storage.Archiver, metrics *Metrics) *Server {
	s := &Server{
		ledger:  lgr,
		archive: archive,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.mux.HandleFunc("GET /api/members", s.handleListMembers)
	s.mux.HandleFunc("POST /api/members", s.handleAddMember)
	s.mux.HandleFunc("DELETE /api/members/{name}", s.handleRemoveMember)

	s.mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	s.mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	s.mux.HandleFunc("DELETE /api/expenses/{index}", s.handleDeleteExpense)

	s.mux.HandleFunc("GET /api/balances", s.handleBalances)
	s.mux.HandleFunc("GET /api/history", s.handleHistory)
	s.mux.HandleFunc("GET /api/settle", s.handleSettle)
	s.mux.HandleFunc("GET /api/shares", s.handleShares)

	s.mux.HandleFunc("PUT /api/currency", s.handleSetCurrency)
	s.mux.HandleFunc("POST /api/clear", s.handleClear)

	s.mux.HandleFunc("POST /api/archive/export", s.handleExport)
	s.mux.HandleFunc("POST /api/archive/import", s.handleImport)
	s.mux.HandleFunc("POST /api/archive/balances", s.handleExportBalances)
}

// Handler returns the full handler chain, middleware included.
func (s *Server) Handler() http.Handler {
	return requestLogger(s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// syncGauges refreshes the size gauges after a mutation.
func (s *Server) syncGauges() {
	s.metrics.Members.Set(float64(len(s.ledger.Members())))
	s.metrics.Expenses.Set(float64(len(s.ledger.Expenses())))
}
