package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// RecordStore defines persistence of a whole ledger to a file.
type RecordStore interface {
	Save(ctx context.Context, path string, header domain.Header, records []domain.Record) error
	Load(ctx context.Context, path string, header domain.Header) ([]domain.Record, error)
}

// Metrics receives ledger activity.
type Metrics interface {
	RecordAdded(kind domain.Kind)
	RecordDeleted()
	OperationFailed(operation string, err error)
	Persisted(operation string, duration time.Duration, err error)
	LedgerState(records int, balance decimal.Decimal)
}

type noopMetrics struct{}

func (noopMetrics) RecordAdded(domain.Kind)                {}
func (noopMetrics) RecordDeleted()                         {}
func (noopMetrics) OperationFailed(string, error)          {}
func (noopMetrics) Persisted(string, time.Duration, error) {}
func (noopMetrics) LedgerState(int, decimal.Decimal)       {}
