package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartsplit/smartsplit/internal/ledger"
	"github.com/smartsplit/smartsplit/internal/storage/csvfile"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// promauto registers on the default registry, so metrics are created once
// for the whole test binary.
var testMetrics = NewMetrics()

func newTestServer(t *testing.T) (*Server, *ledger.Ledger) {
	t.Helper()
	lgr := ledger.New("$")
	return New(lgr, csvfile.New(), testMetrics), lgr
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return body
}

func TestMemberEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	if rec := doJSON(t, s, "POST", "/api/members", `{"name":"Alice"}`); rec.Code != http.StatusOK {
		t.Fatalf("add member status = %d, body %s", rec.Code, rec.Body)
	}
	doJSON(t, s, "POST", "/api/members", `{"name":"Bob"}`)

	rec := doJSON(t, s, "GET", "/api/members", "")
	body := decodeBody(t, rec)
	members, _ := body["members"].([]any)
	if len(members) != 2 || members[0] != "Alice" || members[1] != "Bob" {
		t.Errorf("members = %v, want [Alice Bob]", members)
	}

	if rec := doJSON(t, s, "POST", "/api/members", `{"name":""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("empty name status = %d, want 400", rec.Code)
	}
}

func TestRemoveMemberStatuses(t *testing.T) {
	s, lgr := newTestServer(t)
	lgr.AddMember("Alice")
	lgr.AddMember("Bob")
	if _, _, err := lgr.AddExpense("Alice", dec(t, "30"), []string{"Alice", "Bob"}, ""); err != nil {
		t.Fatal(err)
	}

	if rec := doJSON(t, s, "DELETE", "/api/members/Ghost", ""); rec.Code != http.StatusNotFound {
		t.Errorf("remove unknown status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, s, "DELETE", "/api/members/Bob", ""); rec.Code != http.StatusConflict {
		t.Errorf("remove unsettled status = %d, want 409", rec.Code)
	}
}

func TestExpenseEndpoints(t *testing.T) {
	s, _ := newTestServer(t)
	doJSON(t, s, "POST", "/api/members", `{"name":"Alice"}`)
	doJSON(t, s, "POST", "/api/members", `{"name":"Bob"}`)

	rec := doJSON(t, s, "POST", "/api/expenses",
		`{"payer":"Alice","amount":90,"shared_with":["Alice","Bob","Ghost"],"description":"lunch"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add expense status = %d, body %s", rec.Code, rec.Body)
	}
	body := decodeBody(t, rec)
	warnings, _ := body["warnings"].([]any)
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one for Ghost", warnings)
	}

	if rec := doJSON(t, s, "POST", "/api/expenses",
		`{"payer":"Ghost","amount":10,"shared_with":["Alice"]}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown payer status = %d, want 422", rec.Code)
	}
	if rec := doJSON(t, s, "POST", "/api/expenses",
		`{"payer":"Alice","amount":10,"shared_with":[]}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty share set status = %d, want 422", rec.Code)
	}
	if rec := doJSON(t, s, "POST", "/api/expenses",
		`{"payer":"Alice","amount":-5,"shared_with":["Alice"]}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative amount status = %d, want 422", rec.Code)
	}

	if rec := doJSON(t, s, "DELETE", "/api/expenses/0", ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete expense status = %d, want 204", rec.Code)
	}
	if rec := doJSON(t, s, "DELETE", "/api/expenses/5", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete out of range status = %d, want 404", rec.Code)
	}
}

func TestSettleEndpoint(t *testing.T) {
	s, lgr := newTestServer(t)
	lgr.AddMember("Alice")
	lgr.AddMember("Bob")
	lgr.AddMember("Charlie")
	if _, _, err := lgr.AddExpense("Alice", dec(t, "90"), []string{"Alice", "Bob", "Charlie"}, ""); err != nil {
		t.Fatal(err)
	}

	body := decodeBody(t, doJSON(t, s, "GET", "/api/settle", ""))
	if settled, _ := body["settled"].(bool); settled {
		t.Error("settled = true, want false")
	}
	transfers, _ := body["transfers"].([]any)
	if len(transfers) != 2 {
		t.Errorf("transfers = %v, want 2", transfers)
	}

	// A fresh ledger reports settled explicitly, not just an empty list.
	s2, _ := newTestServer(t)
	body = decodeBody(t, doJSON(t, s2, "GET", "/api/settle", ""))
	if settled, _ := body["settled"].(bool); !settled {
		t.Error("settled = false on empty ledger, want true")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	s, lgr := newTestServer(t)
	lgr.AddMember("Alice")
	lgr.AddMember("Bob")
	if _, _, err := lgr.AddExpense("Alice", dec(t, "90"), []string{"Alice", "Bob"}, "lunch"); err != nil {
		t.Fatal(err)
	}
	beforeBalances := decodeBody(t, doJSON(t, s, "GET", "/api/balances", ""))["report"]

	path := filepath.Join(t.TempDir(), "expenses.csv")
	if rec := doJSON(t, s, "POST", "/api/archive/export", `{"path":"`+path+`"}`); rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, body %s", rec.Code, rec.Body)
	}

	rec := doJSON(t, s, "POST", "/api/archive/import", `{"path":"`+path+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", rec.Code, rec.Body)
	}
	body := decodeBody(t, rec)
	if n, _ := body["expenses"].(float64); n != 1 {
		t.Errorf("imported expenses = %v, want 1", body["expenses"])
	}

	afterBalances := decodeBody(t, doJSON(t, s, "GET", "/api/balances", ""))["report"]
	if beforeBalances != afterBalances {
		t.Errorf("balances changed over round trip:\n%v\n%v", beforeBalances, afterBalances)
	}
}

func TestImportFailureLeavesLedgerEmpty(t *testing.T) {
	s, lgr := newTestServer(t)
	lgr.AddMember("Alice")
	if _, _, err := lgr.AddExpense("Alice", dec(t, "10"), []string{"Alice"}, ""); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "Date,Payer,Amount,Shared With,Description\n" +
		"2024-03-01 12:30,Alice,ninety,Alice,lunch\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, s, "POST", "/api/archive/import", `{"path":"`+path+`"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("import status = %d, want 422 (body %s)", rec.Code, rec.Body)
	}

	// Import clears before reading: a failed import leaves the ledger
	// empty, never half-populated.
	if members := lgr.Members(); len(members) != 0 {
		t.Errorf("members = %v after failed import, want empty", members)
	}
	if expenses := lgr.Expenses(); len(expenses) != 0 {
		t.Errorf("expense log has %d entries after failed import, want 0", len(expenses))
	}
}

func TestBalancesExportEndpoint(t *testing.T) {
	s, lgr := newTestServer(t)
	lgr.AddMember("Alice")

	path := filepath.Join(t.TempDir(), "balances.txt")
	if rec := doJSON(t, s, "POST", "/api/archive/balances", `{"path":"`+path+`"}`); rec.Code != http.StatusOK {
		t.Fatalf("export balances status = %d, body %s", rec.Code, rec.Body)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "Final Balances:") {
		t.Errorf("exported balances = %q", raw)
	}
}

func TestCurrencyEndpoint(t *testing.T) {
	s, lgr := newTestServer(t)
	if rec := doJSON(t, s, "PUT", "/api/currency", `{"currency":"€"}`); rec.Code != http.StatusOK {
		t.Fatalf("set currency status = %d", rec.Code)
	}
	if got := lgr.Currency(); got != "€" {
		t.Errorf("currency = %q, want €", got)
	}
	if rec := doJSON(t, s, "PUT", "/api/currency", `{"currency":""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("empty currency status = %d, want 400", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := doJSON(t, s, "GET", "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d", rec.Code)
	}
}
