package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smartsplit/smartsplit/internal/ledger"
	"github.com/smartsplit/smartsplit/internal/storage/csvfile"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps core error kinds to HTTP status codes so callers can
// tell the failure modes apart without parsing messages.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, ledger.ErrIndexOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrUnknownPayer),
		errors.Is(err, ledger.ErrEmptyShareSet),
		errors.Is(err, csvfile.ErrInvalidAmount),
		errors.Is(err, csvfile.ErrInvalidDate),
		errors.Is(err, csvfile.ErrMissingColumn):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrUnsettledBalance):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	} else {
		slog.Warn("Request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}
