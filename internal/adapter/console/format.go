package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// Formatter renders amounts in a display currency.
type Formatter struct {
	currency *money.Currency
}

// NewFormatter returns a formatter for the ISO 4217 code. Unknown codes fall
// back to USD.
func NewFormatter(code string) Formatter {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	return Formatter{currency: cur}
}

// Amount formats d with the currency symbol and fraction digits, e.g. -$4.50.
func (f Formatter) Amount(d decimal.Decimal) string {
	minor := d.Shift(int32(f.currency.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return f.wide(minor)
	}
	return money.New(minor.IntPart(), f.currency.Code).Display()
}

// wide lays out minor units that overflow int64 with the currency's own
// separators and template.
func (f Formatter) wide(minor decimal.Decimal) string {
	c := f.currency
	digits := minor.Abs().BigInt().String()
	if len(digits) <= c.Fraction {
		digits = strings.Repeat("0", c.Fraction-len(digits)+1) + digits
	}

	whole, frac := digits[:len(digits)-c.Fraction], digits[len(digits)-c.Fraction:]
	if c.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + c.Thousand + whole[i:]
		}
	}

	s := whole
	if c.Fraction > 0 {
		s += c.Decimal + frac
	}
	s = strings.Replace(c.Template, "1", s, 1)
	s = strings.Replace(s, "$", c.Grapheme, 1)
	if minor.IsNegative() {
		s = "-" + s
	}
	return s
}

// PrintRecords writes records numbered from 1.
func PrintRecords(w io.Writer, records []domain.Record, f Formatter) {
	for i, r := range records {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, r.Label, f.Amount(r.Amount))
	}
}

// PrintTotal writes the balance line, labelled for the variant.
func PrintTotal(w io.Writer, variant domain.Variant, total decimal.Decimal, f Formatter) {
	label := "Balance"
	if variant == domain.VariantExpense {
		label = "Total"
	}
	fmt.Fprintf(w, "%s: %s\n", label, f.Amount(total))
}

// PrintSummary writes income, expenses and balance on separate lines.
func PrintSummary(w io.Writer, s domain.Summary, f Formatter) {
	fmt.Fprintf(w, "Records:  %d\n", s.Count)
	fmt.Fprintf(w, "Income:   %s\n", f.Amount(s.Income))
	fmt.Fprintf(w, "Expenses: %s\n", f.Amount(s.Expenses))
	fmt.Fprintf(w, "Balance:  %s\n", f.Amount(s.Balance))
}

// PrintViolations writes one line per record that breaks add-time rules.
func PrintViolations(w io.Writer, violations []domain.Violation, f Formatter) {
	if len(violations) == 0 {
		fmt.Fprintln(w, "All records are valid.")
		return
	}
	for _, v := range violations {
		fmt.Fprintf(w, "%d. %s: %s: %v\n", v.Position+1, v.Record.Label, f.Amount(v.Record.Amount), v.Err)
	}
}
