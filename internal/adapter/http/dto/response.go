package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RecordResponse represents a single record.
type RecordResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(r domain.Record) RecordResponse {
	return RecordResponse{
		Label:  r.Label,
		Amount: domain.FormatAmount(r.Amount),
	}
}

// ListedRecord is a record with its 1-based display position.
type ListedRecord struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Amount   string `json:"amount"`
}

// ListRecordsResponse represents the full ledger in insertion order.
type ListRecordsResponse struct {
	Records []ListedRecord `json:"records"`
	Total   int            `json:"total"`
}

// ListFromDomain converts records to a list response.
func ListFromDomain(records []domain.Record) ListRecordsResponse {
	items := make([]ListedRecord, len(records))
	for i, r := range records {
		items[i] = ListedRecord{
			Position: i + 1,
			Label:    r.Label,
			Amount:   domain.FormatAmount(r.Amount),
		}
	}

	return ListRecordsResponse{
		Records: items,
		Total:   len(records),
	}
}

// BalanceResponse represents the ledger balance.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// BalanceFromDomain converts a balance to a response.
func BalanceFromDomain(balance decimal.Decimal) BalanceResponse {
	return BalanceResponse{Balance: domain.FormatAmount(balance)}
}

// SummaryResponse represents ledger totals.
type SummaryResponse struct {
	Count    int    `json:"count"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		Count:    s.Count,
		Income:   domain.FormatAmount(s.Income),
		Expenses: domain.FormatAmount(s.Expenses),
		Balance:  domain.FormatAmount(s.Balance),
	}
}

// ViolationResponse describes a record that breaks add-time rules.
type ViolationResponse struct {
	Position int    `json:"position"`
	Label    string `json:"label"`
	Amount   string `json:"amount"`
	Error    string `json:"error"`
}

// CheckResponse represents the result of a ledger check.
type CheckResponse struct {
	Valid      bool                `json:"valid"`
	Violations []ViolationResponse `json:"violations"`
}

// CheckFromDomain converts violations to a response. Positions are 1-based.
func CheckFromDomain(violations []domain.Violation) CheckResponse {
	items := make([]ViolationResponse, len(violations))
	for i, v := range violations {
		items[i] = ViolationResponse{
			Position: v.Position + 1,
			Label:    v.Record.Label,
			Amount:   domain.FormatAmount(v.Record.Amount),
			Error:    v.Err.Error(),
		}
	}

	return CheckResponse{
		Valid:      len(violations) == 0,
		Violations: items,
	}
}

// PersistResponse reports a completed save or load.
type PersistResponse struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}
