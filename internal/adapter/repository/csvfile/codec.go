package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iho/pocketledger/internal/domain"
)

const utf8BOM = "\ufeff"

// Encode writes header then one row per record.
func Encode(w io.Writer, header domain.Header, records []domain.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{header.Label, header.Amount}); err != nil {
		return err
	}

	for _, r := range records {
		if err := cw.Write([]string{r.Label, domain.FormatAmount(r.Amount)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode reads a two-column file written by Encode. The header must match
// header (trimmed, case-insensitive). Every failure wraps domain.ErrParse.
func Decode(r io.Reader, header domain.Header) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrParse)
	}
	if err != nil {
		return nil, wrapReadError(err)
	}
	if err := checkHeader(head, header); err != nil {
		return nil, err
	}

	var records []domain.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapReadError(err)
		}

		line, _ := cr.FieldPos(0)
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", domain.ErrParse, line, len(row))
		}

		amount, err := domain.ParseAmount(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrParse, line, err)
		}

		records = append(records, domain.Record{Label: row[0], Amount: amount})
	}

	return records, nil
}

func checkHeader(got []string, want domain.Header) error {
	if len(got) != 2 {
		return fmt.Errorf("%w: header must have 2 columns, got %d", domain.ErrParse, len(got))
	}

	label := strings.TrimSpace(strings.TrimPrefix(got[0], utf8BOM))
	amount := strings.TrimSpace(got[1])
	if !strings.EqualFold(label, want.Label) || !strings.EqualFold(amount, want.Amount) {
		return fmt.Errorf("%w: header %q,%q does not match %q,%q", domain.ErrParse, got[0], got[1], want.Label, want.Amount)
	}

	return nil
}

func wrapReadError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %v", domain.ErrParse, perr)
	}
	return fmt.Errorf("%w: %v", domain.ErrIO, err)
}
