package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is an ordered sequence of records. Insertion order is kept and
// positions are 0-based.
type Ledger struct {
	policy  Policy
	records []Record
}

// NewLedger creates an empty ledger enforcing policy.
func NewLedger(policy Policy) *Ledger {
	return &Ledger{policy: policy}
}

// Policy returns the invariants the ledger enforces.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Add validates the input and appends the resulting record.
func (l *Ledger) Add(label, rawAmount string, kind Kind) (Record, error) {
	record, err := l.policy.NewRecord(label, rawAmount, kind)
	if err != nil {
		return Record{}, err
	}

	l.records = append(l.records, record)
	return record, nil
}

// List returns a copy of the records in insertion order.
func (l *Ledger) List() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// DeleteAt removes the record at position and returns it.
func (l *Ledger) DeleteAt(position int) (Record, error) {
	if position < 0 || position >= len(l.records) {
		return Record{}, fmt.Errorf("%w: position %d, ledger has %d records", ErrIndexOutOfRange, position, len(l.records))
	}

	removed := l.records[position]
	l.records = append(l.records[:position:position], l.records[position+1:]...)
	return removed, nil
}

// Replace swaps the whole sequence for records.
func (l *Ledger) Replace(records []Record) {
	l.records = make([]Record, len(records))
	copy(l.records, records)
}

// Balance is the sum of all present amounts.
func (l *Ledger) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.records {
		total = total.Add(r.Amount)
	}
	return total
}

// Summary splits the balance into income and expenses.
type Summary struct {
	Count    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Summary aggregates the present records.
func (l *Ledger) Summary() Summary {
	s := Summary{
		Count:    len(l.records),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, r := range l.records {
		if r.Amount.IsNegative() {
			s.Expenses = s.Expenses.Add(r.Amount)
		} else {
			s.Income = s.Income.Add(r.Amount)
		}
	}
	s.Balance = s.Income.Add(s.Expenses)
	return s
}

// Violation describes a present record that breaks an add-time invariant.
type Violation struct {
	Position int
	Record   Record
	Err      error
}

// Check lists records that Add would have rejected.
func (l *Ledger) Check() []Violation {
	var out []Violation
	for i, r := range l.records {
		if err := l.policy.Validate(r); err != nil {
			out = append(out, Violation{Position: i, Record: r, Err: err})
		}
	}
	return out
}
