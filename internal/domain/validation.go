package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places an amount may carry. The
// ledger file and API responses render amounts with this many places.
const AmountPrecision = 2

// ValidateLabel rejects empty or whitespace-only labels.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	return nil
}

// ParseAmount parses user or file supplied text as a decimal number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}

	return amount, nil
}

// SignAmount turns parsed input into the amount stored for the policy.
// With a kind the input is a magnitude; without one it is taken as signed.
func (p Policy) SignAmount(amount decimal.Decimal, kind Kind) (decimal.Decimal, error) {
	switch p.Variant {
	case VariantExpense:
		if kind == KindIncome {
			return decimal.Zero, fmt.Errorf("%w: %s ledger only records expenses", ErrInvalidKind, p.Variant)
		}
		return amount, nil
	default:
		if kind == KindUnspecified {
			return amount, nil
		}
		if amount.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: amount must not be negative when a kind is given", ErrInvalidAmount)
		}
		if kind == KindExpense {
			return amount.Neg(), nil
		}
		return amount, nil
	}
}

// ValidateAmount checks a stored amount against the precision limit and the
// policy's sign constraint.
func (p Policy) ValidateAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(AmountPrecision)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, AmountPrecision)
	}

	if p.Variant == VariantExpense {
		if !amount.IsPositive() {
			return fmt.Errorf("%w: expense amount must be positive", ErrInvalidAmount)
		}
		return nil
	}

	if amount.IsZero() && !p.AllowZero {
		return fmt.Errorf("%w: amount must not be zero", ErrInvalidAmount)
	}

	return nil
}

// Validate applies the add-time invariants to an existing record.
func (p Policy) Validate(r Record) error {
	if err := ValidateLabel(r.Label); err != nil {
		return err
	}
	return p.ValidateAmount(r.Amount)
}

// NewRecord validates raw input and builds the record that Add would store.
func (p Policy) NewRecord(label, rawAmount string, kind Kind) (Record, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Record{}, err
	}

	if err := ValidateLabel(label); err != nil {
		return Record{}, err
	}

	signed, err := p.SignAmount(amount, kind)
	if err != nil {
		return Record{}, err
	}

	if err := p.ValidateAmount(signed); err != nil {
		return Record{}, err
	}

	return Record{Label: strings.TrimSpace(label), Amount: signed}, nil
}

// FormatAmount renders amount with AmountPrecision places. Amounts that carry
// more places, which only a hand-edited file can produce, keep all of them.
func FormatAmount(amount decimal.Decimal) string {
	places := int32(AmountPrecision)
	if exp := -amount.Exponent(); exp > places && !amount.Equal(amount.Truncate(places)) {
		places = exp
	}
	return amount.StringFixed(places)
}
