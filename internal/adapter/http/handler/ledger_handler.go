package handler

import (
	"context"
	"net/http"

	"github.com/iho/pocketledger/internal/adapter/http/dto"
	"github.com/iho/pocketledger/internal/domain"
)

// PersistenceService defines the file operations needed by LedgerHandler.
type PersistenceService interface {
	SaveToFile(ctx context.Context, path string) error
	LoadFromFile(ctx context.Context, path string) error
	List(ctx context.Context) []domain.Record
}

// LedgerHandler handles ledger-wide persistence. It only ever touches the
// file it was configured with.
type LedgerHandler struct {
	ledger PersistenceService
	path   string
}

// NewLedgerHandler creates a new LedgerHandler bound to path.
func NewLedgerHandler(ledger PersistenceService, path string) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, path: path}
}

// Save handles POST /ledger/save.
func (h *LedgerHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.SaveToFile(r.Context(), h.path); err != nil {
		writeDomainError(w, err)
		return
	}

	h.writePersisted(w, r)
}

// Load handles POST /ledger/load.
func (h *LedgerHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.LoadFromFile(r.Context(), h.path); err != nil {
		writeDomainError(w, err)
		return
	}

	h.writePersisted(w, r)
}

func (h *LedgerHandler) writePersisted(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PersistResponse{
		Path:    h.path,
		Records: len(h.ledger.List(r.Context())),
	})
}
