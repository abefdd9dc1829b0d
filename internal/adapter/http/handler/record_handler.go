package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/adapter/http/dto"
	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// RecordService defines the record operations needed by RecordHandler.
type RecordService interface {
	Add(ctx context.Context, input usecase.AddInput) (domain.Record, error)
	List(ctx context.Context) []domain.Record
	DeleteAt(ctx context.Context, position int) (domain.Record, error)
	Balance(ctx context.Context) decimal.Decimal
	Summary(ctx context.Context) domain.Summary
	Check(ctx context.Context) []domain.Violation
}

// RecordHandler handles record-related HTTP requests.
type RecordHandler struct {
	ledger RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(ledger RecordService) *RecordHandler {
	return &RecordHandler{ledger: ledger}
}

// Create handles POST /records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	record, err := h.ledger.Add(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(record))
}

// List handles GET /records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ListFromDomain(h.ledger.List(r.Context())))
}

// Delete handles DELETE /records/{position}. The position is 0-based.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	position, err := parsePosition(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid position", "position must be an integer")
		return
	}

	removed, err := h.ledger.DeleteAt(r.Context(), position)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromDomain(removed))
}

// Balance handles GET /balance.
func (h *RecordHandler) Balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(h.ledger.Balance(r.Context())))
}

// Summary handles GET /summary.
func (h *RecordHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(h.ledger.Summary(r.Context())))
}

// Check handles GET /check.
func (h *RecordHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CheckFromDomain(h.ledger.Check(r.Context())))
}
