package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// LedgerService defines the behavior needed by Shell.
type LedgerService interface {
	Policy() domain.Policy
	Add(ctx context.Context, input usecase.AddInput) (domain.Record, error)
	List(ctx context.Context) []domain.Record
	DeleteAt(ctx context.Context, position int) (domain.Record, error)
	Balance(ctx context.Context) decimal.Decimal
}

// Shell is the line-oriented menu: add, view, delete, exit.
type Shell struct {
	svc       LedgerService
	in        *bufio.Scanner
	out       io.Writer
	formatter Formatter
	variant   domain.Variant
}

// NewShell creates a Shell reading choices from in and writing to out.
func NewShell(svc LedgerService, in io.Reader, out io.Writer, formatter Formatter) *Shell {
	return &Shell{
		svc:       svc,
		in:        bufio.NewScanner(in),
		out:       out,
		formatter: formatter,
		variant:   svc.Policy().Variant,
	}
}

// Run loops until the user exits, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	noun := s.variant.Noun()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "\n%s Menu:\n", s.title())
		fmt.Fprintf(s.out, "1. Add %s\n", noun)
		fmt.Fprintf(s.out, "2. View %ss\n", noun)
		fmt.Fprintf(s.out, "3. Delete %s\n", noun)
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		switch choice {
		case "1":
			if !s.add(ctx) {
				return nil
			}
		case "2":
			s.view(ctx)
		case "3":
			if !s.delete(ctx) {
				return nil
			}
		case "4":
			fmt.Fprintf(s.out, "Exiting %s. Goodbye!\n", s.title())
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) title() string {
	if s.variant == domain.VariantExpense {
		return "Expense Tracker"
	}
	return "Finance Tracker"
}

// prompt writes msg and returns the trimmed next line; false on end of input.
func (s *Shell) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) add(ctx context.Context) bool {
	var input usecase.AddInput
	var ok bool

	if s.variant == domain.VariantExpense {
		if input.Label, ok = s.prompt("Enter expense name: "); !ok {
			return false
		}
		if input.Amount, ok = s.prompt("Enter expense amount: "); !ok {
			return false
		}
	} else {
		if input.Label, ok = s.prompt("Enter description: "); !ok {
			return false
		}
		if input.Amount, ok = s.prompt("Enter amount: "); !ok {
			return false
		}
		rawKind, ok := s.prompt("Enter type (income/expense) [expense]: ")
		if !ok {
			return false
		}
		if rawKind == "" {
			rawKind = string(domain.KindExpense)
		}
		kind, err := domain.ParseKind(rawKind)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return true
		}
		input.Kind = kind
	}

	if _, err := s.svc.Add(ctx, input); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return true
	}

	fmt.Fprintf(s.out, "%s added successfully!\n", s.variant.Noun())
	return true
}

func (s *Shell) view(ctx context.Context) {
	records := s.svc.List(ctx)
	if len(records) == 0 {
		fmt.Fprintf(s.out, "No %ss found.\n", strings.ToLower(s.variant.Noun()))
		return
	}

	fmt.Fprintf(s.out, "\n%ss:\n", s.variant.Noun())
	PrintRecords(s.out, records, s.formatter)
	PrintTotal(s.out, s.variant, s.svc.Balance(ctx), s.formatter)
}

func (s *Shell) delete(ctx context.Context) bool {
	lower := strings.ToLower(s.variant.Noun())

	records := s.svc.List(ctx)
	if len(records) == 0 {
		fmt.Fprintf(s.out, "No %ss to delete.\n", lower)
		return true
	}

	fmt.Fprintf(s.out, "\n%ss:\n", s.variant.Noun())
	PrintRecords(s.out, records, s.formatter)

	raw, ok := s.prompt(fmt.Sprintf("Enter the %s number to delete: ", lower))
	if !ok {
		return false
	}

	number, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid selection. Please try again.")
		return true
	}

	if _, err := s.svc.DeleteAt(ctx, number-1); err != nil {
		fmt.Fprintln(s.out, "Invalid selection. Please try again.")
		return true
	}

	fmt.Fprintf(s.out, "%s deleted successfully!\n", s.variant.Noun())
	return true
}
