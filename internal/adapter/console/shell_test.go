package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pocketledger/internal/adapter/console"
	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

func newLedger(variant domain.Variant) *usecase.LedgerUseCase {
	policy := domain.DefaultPolicy()
	policy.Variant = variant
	return usecase.NewLedgerUseCase(policy, nil, zerolog.Nop(), nil)
}

func runShell(t *testing.T, svc console.LedgerService, input string) string {
	t.Helper()

	var out bytes.Buffer
	shell := console.NewShell(svc, strings.NewReader(input), &out, console.NewFormatter("USD"))
	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

func TestShellSignedAddViewDelete(t *testing.T) {
	svc := newLedger(domain.VariantSigned)

	input := strings.Join([]string{
		"1", "Salary", "2000", "income",
		"1", "Coffee", "4.50", "",
		"2",
		"3", "1",
		"2",
		"4",
	}, "\n") + "\n"

	out := runShell(t, svc, input)

	assert.Contains(t, out, "Finance Tracker Menu:")
	assert.Contains(t, out, "1. Add Transaction")
	assert.Contains(t, out, "Transaction added successfully!")
	assert.Contains(t, out, "1. Salary: $2,000.00")
	assert.Contains(t, out, "2. Coffee: -$4.50")
	assert.Contains(t, out, "Balance: $1,995.50")
	assert.Contains(t, out, "Transaction deleted successfully!")
	assert.Contains(t, out, "Balance: -$4.50")
	assert.Contains(t, out, "Exiting Finance Tracker. Goodbye!")

	records := svc.List(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee", records[0].Label)
}

func TestShellExpenseVariant(t *testing.T) {
	svc := newLedger(domain.VariantExpense)

	input := strings.Join([]string{
		"2",
		"3",
		"1", "Lunch", "12.25",
		"1", "Refund", "-3",
		"2",
		"4",
	}, "\n") + "\n"

	out := runShell(t, svc, input)

	assert.Contains(t, out, "Expense Tracker Menu:")
	assert.Contains(t, out, "No expenses found.")
	assert.Contains(t, out, "No expenses to delete.")
	assert.Contains(t, out, "Expense added successfully!")
	assert.Contains(t, out, "Error: invalid amount")
	assert.Contains(t, out, "1. Lunch: $12.25")
	assert.Contains(t, out, "Total: $12.25")
	assert.Equal(t, 1, len(svc.List(context.Background())))
}

func TestShellRejectsBadInput(t *testing.T) {
	svc := newLedger(domain.VariantSigned)

	input := strings.Join([]string{
		"9",
		"1", "   ", "5", "",
		"1", "Gift", "abc", "income",
		"1", "Gift", "5", "bonus",
		"1", "Gift", "5", "income",
		"3", "7",
		"3", "x",
		"4",
	}, "\n") + "\n"

	out := runShell(t, svc, input)

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Error: label must not be empty")
	assert.Contains(t, out, "Error: invalid amount")
	assert.Contains(t, out, "Error: invalid kind")
	assert.Equal(t, 2, strings.Count(out, "Invalid selection. Please try again."))

	records := svc.List(context.Background())
	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(5)))
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	svc := newLedger(domain.VariantSigned)

	out := runShell(t, svc, "1\nRent\n")

	assert.NotContains(t, out, "added successfully")
	assert.Empty(t, svc.List(context.Background()))
}

func TestShellHonoursCancelledContext(t *testing.T) {
	svc := newLedger(domain.VariantSigned)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := console.NewShell(svc, strings.NewReader("4\n"), &out, console.NewFormatter("USD")).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatterAmount(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"USD", "4.5", "$4.50"},
		{"USD", "-4.5", "-$4.50"},
		{"USD", "2000", "$2,000.00"},
		{"USD", "0", "$0.00"},
		{"USD", "0.005", "$0.01"},
		{"NOPE", "1", "$1.00"},
		{"USD", "92233720368547758.07", "$92,233,720,368,547,758.07"},
		{"USD", "92233720368547758.08", "$92,233,720,368,547,758.08"},
		{"USD", "100000000000000000", "$100,000,000,000,000,000.00"},
		{"USD", "-100000000000000000", "-$100,000,000,000,000,000.00"},
		{"USD", "100000000000000000000", "$100,000,000,000,000,000,000.00"},
		{"EUR", "123456789012345678.9", "\u20ac123,456,789,012,345,678.90"},
		{"JPY", "-100000000000000000000", "-\u00a5100,000,000,000,000,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.currency+"/"+tt.amount, func(t *testing.T) {
			f := console.NewFormatter(tt.currency)
			assert.Equal(t, tt.want, f.Amount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	f := console.NewFormatter("USD")

	console.PrintViolations(&buf, nil, f)
	assert.Equal(t, "All records are valid.\n", buf.String())

	buf.Reset()
	console.PrintViolations(&buf, []domain.Violation{{
		Position: 1,
		Record:   domain.Record{Label: "Bad", Amount: decimal.Zero},
		Err:      domain.ErrInvalidAmount,
	}}, f)
	assert.Equal(t, "2. Bad: $0.00: invalid amount\n", buf.String())
}
