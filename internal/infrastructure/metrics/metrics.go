package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// Metrics holds all Prometheus metrics of the ledger.
type Metrics struct {
	// Record metrics
	RecordsAdded    *prometheus.CounterVec
	RecordsDeleted  prometheus.Counter
	OperationErrors *prometheus.CounterVec

	// Ledger state
	LedgerRecords prometheus.Gauge
	LedgerBalance prometheus.Gauge

	// Persistence metrics
	PersistOperations *prometheus.CounterVec
	PersistDuration   *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RecordsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketledger_records_added_total",
				Help: "Total number of records added by kind",
			},
			[]string{"kind"},
		),
		RecordsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "pocketledger_records_deleted_total",
			Help: "Total number of records deleted",
		}),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketledger_operation_errors_total",
				Help: "Total number of failed ledger operations by operation and error kind",
			},
			[]string{"operation", "error_type"},
		),

		LedgerRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pocketledger_records",
			Help: "Number of records currently in the ledger",
		}),
		LedgerBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pocketledger_balance",
			Help: "Current ledger balance",
		}),

		PersistOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketledger_persist_operations_total",
				Help: "Total number of save and load operations by status",
			},
			[]string{"operation", "status"},
		),
		PersistDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pocketledger_persist_duration_seconds",
				Help:    "Duration of save and load operations",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"operation"},
		),
	}
}

// RecordAdded counts an added record.
func (m *Metrics) RecordAdded(kind domain.Kind) {
	label := string(kind)
	if label == "" {
		label = "unspecified"
	}
	m.RecordsAdded.WithLabelValues(label).Inc()
}

// RecordDeleted counts a deleted record.
func (m *Metrics) RecordDeleted() {
	m.RecordsDeleted.Inc()
}

// OperationFailed counts a failed operation by error kind.
func (m *Metrics) OperationFailed(operation string, err error) {
	m.OperationErrors.WithLabelValues(operation, domain.ErrorKind(err)).Inc()
}

// Persisted records the outcome and duration of a save or load.
func (m *Metrics) Persisted(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.PersistOperations.WithLabelValues(operation, status).Inc()
	m.PersistDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// LedgerState updates the record count and balance gauges.
func (m *Metrics) LedgerState(records int, balance decimal.Decimal) {
	m.LedgerRecords.Set(float64(records))
	m.LedgerBalance.Set(balance.InexactFloat64())
}
