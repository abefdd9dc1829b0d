package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// Operation names used in logs and metrics.
const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpSave   = "save"
	OpLoad   = "load"
)

// LedgerUseCase is the single entry point adapters use to work with a ledger.
// Calls are serialized so concurrent adapters see one logical actor.
type LedgerUseCase struct {
	mu      sync.Mutex
	ledger  *domain.Ledger
	store   RecordStore
	metrics Metrics
	logger  zerolog.Logger
}

// NewLedgerUseCase creates an empty ledger enforcing policy. A nil metrics
// sink disables metrics.
func NewLedgerUseCase(policy domain.Policy, store RecordStore, logger zerolog.Logger, metrics Metrics) *LedgerUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &LedgerUseCase{
		ledger:  domain.NewLedger(policy),
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// AddInput represents raw input for a new record.
type AddInput struct {
	Label  string
	Amount string
	Kind   domain.Kind
}

// Policy returns the invariants enforced by the ledger.
func (uc *LedgerUseCase) Policy() domain.Policy {
	return uc.ledger.Policy()
}

// Add validates input and appends the record.
func (uc *LedgerUseCase) Add(ctx context.Context, input AddInput) (domain.Record, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	record, err := uc.ledger.Add(input.Label, input.Amount, input.Kind)
	if err != nil {
		uc.fail(OpAdd, err)
		return domain.Record{}, err
	}

	uc.metrics.RecordAdded(input.Kind)
	uc.reportState()
	uc.logger.Debug().
		Str("label", record.Label).
		Str("amount", record.Amount.String()).
		Int("records", uc.ledger.Len()).
		Msg("record added")

	return record, nil
}

// List returns the records in insertion order.
func (uc *LedgerUseCase) List(ctx context.Context) []domain.Record {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.ledger.List()
}

// DeleteAt removes the record at the 0-based position.
func (uc *LedgerUseCase) DeleteAt(ctx context.Context, position int) (domain.Record, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed, err := uc.ledger.DeleteAt(position)
	if err != nil {
		uc.fail(OpDelete, err)
		return domain.Record{}, err
	}

	uc.metrics.RecordDeleted()
	uc.reportState()
	uc.logger.Debug().
		Int("position", position).
		Str("label", removed.Label).
		Msg("record deleted")

	return removed, nil
}

// Balance returns the sum of all present amounts.
func (uc *LedgerUseCase) Balance(ctx context.Context) decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.ledger.Balance()
}

// Summary returns income, expense and balance totals.
func (uc *LedgerUseCase) Summary(ctx context.Context) domain.Summary {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.ledger.Summary()
}

// Check lists present records that violate add-time invariants.
func (uc *LedgerUseCase) Check(ctx context.Context) []domain.Violation {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.ledger.Check()
}

// SaveToFile overwrites path with the full ledger.
func (uc *LedgerUseCase) SaveToFile(ctx context.Context, path string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := time.Now()
	records := uc.ledger.List()
	err := uc.store.Save(ctx, path, uc.ledger.Policy().Variant.Header(), records)
	uc.metrics.Persisted(OpSave, time.Since(start), err)
	if err != nil {
		uc.fail(OpSave, err)
		return err
	}

	uc.logger.Info().
		Str("path", path).
		Int("records", len(records)).
		Msg("ledger saved")

	return nil
}

// LoadFromFile replaces the ledger with the contents of path. On any error
// the ledger is left unchanged.
func (uc *LedgerUseCase) LoadFromFile(ctx context.Context, path string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := time.Now()
	records, err := uc.load(ctx, path)
	uc.metrics.Persisted(OpLoad, time.Since(start), err)
	if err != nil {
		uc.fail(OpLoad, err)
		return err
	}

	uc.ledger.Replace(records)
	uc.reportState()
	uc.logger.Info().
		Str("path", path).
		Int("records", len(records)).
		Str("balance", uc.ledger.Balance().String()).
		Msg("ledger loaded")

	return nil
}

func (uc *LedgerUseCase) load(ctx context.Context, path string) ([]domain.Record, error) {
	policy := uc.ledger.Policy()

	records, err := uc.store.Load(ctx, path, policy.Variant.Header())
	if err != nil {
		return nil, err
	}

	if policy.StrictLoad {
		for i, r := range records {
			if err := policy.Validate(r); err != nil {
				return nil, fmt.Errorf("%w: %s: record %d: %v", domain.ErrParse, path, i+1, err)
			}
		}
	}

	return records, nil
}

func (uc *LedgerUseCase) fail(operation string, err error) {
	uc.metrics.OperationFailed(operation, err)

	event := uc.logger.Error()
	if domain.IsUserError(err) {
		event = uc.logger.Warn()
	}
	event.Err(err).
		Str("operation", operation).
		Str("kind", domain.ErrorKind(err)).
		Msg("ledger operation failed")
}

func (uc *LedgerUseCase) reportState() {
	uc.metrics.LedgerState(uc.ledger.Len(), uc.ledger.Balance())
}
