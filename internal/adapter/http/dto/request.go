package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// AmountText accepts an amount as a JSON number or a JSON string and keeps
// the original text so the ledger applies its own parsing rules.
type AmountText string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a number or a string: %w", err)
		}
		*a = AmountText(n)
	}
	return nil
}

// CreateRecordRequest represents a request to add a record.
type CreateRecordRequest struct {
	Label  string     `json:"label"`
	Amount AmountText `json:"amount"`
	Kind   string     `json:"kind,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRecordRequest) ToUseCaseInput() (usecase.AddInput, error) {
	kind, err := domain.ParseKind(r.Kind)
	if err != nil {
		return usecase.AddInput{}, err
	}

	return usecase.AddInput{
		Label:  r.Label,
		Amount: string(r.Amount),
		Kind:   kind,
	}, nil
}
