package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a single financial event.
type Record struct {
	Label  string
	Amount decimal.Decimal
}

// Equal reports whether both records carry the same label and numerically equal amounts.
func (r Record) Equal(o Record) bool {
	return r.Label == o.Label && r.Amount.Equal(o.Amount)
}

// Kind discriminates income from expense when the amount is given as a magnitude.
type Kind string

const (
	KindUnspecified Kind = ""
	KindIncome      Kind = "income"
	KindExpense     Kind = "expense"
)

// ParseKind parses a kind case-insensitively. Empty text is KindUnspecified.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindUnspecified:
		return KindUnspecified, nil
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return KindUnspecified, fmt.Errorf("%w: %q (want income or expense)", ErrInvalidKind, s)
	}
}

// Variant selects which of the two tracker flavours a ledger follows.
type Variant string

const (
	// VariantExpense tracks name/amount pairs with strictly positive amounts.
	VariantExpense Variant = "expense"
	// VariantSigned tracks description/amount pairs signed by kind.
	VariantSigned Variant = "signed"
)

// ParseVariant parses a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantExpense:
		return VariantExpense, nil
	case VariantSigned:
		return VariantSigned, nil
	default:
		return "", fmt.Errorf("unknown ledger variant %q (want expense or signed)", s)
	}
}

// Header holds the two CSV column names of a variant.
type Header struct {
	Label  string
	Amount string
}

// Header returns the fixed column names persisted for the variant.
func (v Variant) Header() Header {
	if v == VariantExpense {
		return Header{Label: "Name", Amount: "Amount"}
	}
	return Header{Label: "Description", Amount: "Amount"}
}

// Noun is the word used by adapters for one record of the variant.
func (v Variant) Noun() string {
	if v == VariantExpense {
		return "Expense"
	}
	return "Transaction"
}

// Policy configures the invariants a ledger enforces.
type Policy struct {
	Variant Variant
	// AllowZero permits zero amounts in the signed variant. The expense
	// variant always rejects them.
	AllowZero bool
	// StrictLoad applies add-time invariants to records read from a file.
	StrictLoad bool
}

// DefaultPolicy is the signed variant with zero amounts allowed and lenient loading.
func DefaultPolicy() Policy {
	return Policy{Variant: VariantSigned, AllowZero: true}
}
