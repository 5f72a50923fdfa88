package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ledger API.
// Tracks mutation counts and current registry/log sizes.
type Metrics struct {
	ExpensesAdded   prometheus.Counter
	ExpensesDeleted prometheus.Counter
	ArchiveImports  prometheus.Counter
	ArchiveExports  prometheus.Counter
	Members         prometheus.Gauge
	Expenses        prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all ledger metrics registered
// on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		ExpensesAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smartsplit_expenses_added_total",
			Help: "Total number of expenses recorded",
		}),
		ExpensesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smartsplit_expenses_deleted_total",
			Help: "Total number of expenses deleted",
		}),
		ArchiveImports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smartsplit_archive_imports_total",
			Help: "Total number of CSV archive imports",
		}),
		ArchiveExports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smartsplit_archive_exports_total",
			Help: "Total number of CSV archive exports",
		}),
		Members: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "smartsplit_members",
			Help: "Current number of members in the registry",
		}),
		Expenses: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "smartsplit_expenses",
			Help: "Current number of expenses in the log",
		}),
	}
}
