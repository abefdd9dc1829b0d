package csvfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pocketledger/internal/domain"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

var signedHeader = domain.VariantSigned.Header()

func rec(label, amount string) domain.Record {
	return domain.Record{Label: label, Amount: decimal.RequireFromString(amount)}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEncode_FixedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, signedHeader, []domain.Record{
		rec("Groceries", "-42.5"),
		rec("Paycheck", "1500"),
		rec("Dinner, drinks", "-31.4"),
		rec("Hand edited", "0.125"),
		rec("Trailing zeros", "7.1000"),
	})
	require.NoError(t, err)

	want := "Description,Amount\n" +
		"Groceries,-42.50\n" +
		"Paycheck,1500.00\n" +
		"\"Dinner, drinks\",-31.40\n" +
		"Hand edited,0.125\n" +
		"Trailing zeros,7.10\n"
	assert.Equal(t, want, buf.String())
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		header  domain.Header
		records []domain.Record
	}{
		{
			name:    "signed variant",
			header:  signedHeader,
			records: []domain.Record{rec("Coffee", "-4.50"), rec("Salary", "2000"), rec("Quote \"x\"", "0.01")},
		},
		{
			name:    "expense variant",
			header:  domain.VariantExpense.Header(),
			records: []domain.Record{rec("Lunch", "12.3"), rec("Bus", "2")},
		},
		{
			name:    "extra places survive",
			header:  signedHeader,
			records: []domain.Record{rec("Hand edited", "0.005"), rec("Tiny", "-0.0001")},
		},
		{
			name:    "empty ledger",
			header:  signedHeader,
			records: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewULIDGenerator())
			path := filepath.Join(t.TempDir(), "ledger.csv")

			require.NoError(t, store.Save(context.Background(), path, tt.header, tt.records))

			got, err := store.Load(context.Background(), path, tt.header)
			require.NoError(t, err)
			require.Len(t, got, len(tt.records))
			for i := range tt.records {
				assert.True(t, got[i].Equal(tt.records[i]), "row %d: got %+v, want %+v", i, got[i], tt.records[i])
			}
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(NewULIDGenerator())
	path := writeFile(t, "ledger.csv", "Description,Amount\nOld,1.00\nOlder,2.00\n")

	require.NoError(t, store.Save(context.Background(), path, signedHeader, []domain.Record{rec("New", "3")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Description,Amount\nNew,3.00\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestStore_SaveFailureKeepsPreviousFile(t *testing.T) {
	original := "Description,Amount\nKeep,1.00\n"
	path := writeFile(t, "ledger.csv", original)

	// Pre-create the temp file so the exclusive create fails.
	tmp := filepath.Join(filepath.Dir(path), ".ledger.csv.FIXED.tmp")
	require.NoError(t, os.WriteFile(tmp, nil, 0o644))

	store := NewStore(fixedID("FIXED"))
	err := store.Save(context.Background(), path, signedHeader, []domain.Record{rec("Lost", "9")})
	assert.ErrorIs(t, err, domain.ErrIO)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))
}

func TestStore_SaveErrors(t *testing.T) {
	store := NewStore(NewULIDGenerator())

	err := store.Save(context.Background(), "", signedHeader, nil)
	assert.ErrorIs(t, err, domain.ErrIO)

	missingDir := filepath.Join(t.TempDir(), "nope", "ledger.csv")
	err = store.Save(context.Background(), missingDir, signedHeader, nil)
	assert.ErrorIs(t, err, domain.ErrIO)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = store.Save(ctx, filepath.Join(t.TempDir(), "x.csv"), signedHeader, nil)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(NewULIDGenerator())

	_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), signedHeader)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_LoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"empty file", "", "missing header"},
		{"wrong header names", "Name,Amount\nx,1\n", "does not match"},
		{"swapped header", "Amount,Description\n1,x\n", "does not match"},
		{"header with three columns", "Description,Amount,Date\n", "2 columns"},
		{"non numeric amount", "Description,Amount\nok,1\nbad,abc\n", "line 3"},
		{"currency formatted amount", "Description,Amount\nbad,$4.50\n", "line 2"},
		{"too many fields", "Description,Amount\na,1,2\n", "expected 2 fields"},
		{"too few fields", "Description,Amount\nlonely\n", "expected 2 fields"},
		{"broken quoting", "Description,Amount\n\"open,1\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewULIDGenerator())
			path := writeFile(t, "ledger.csv", tt.content)

			got, err := store.Load(context.Background(), path, signedHeader)
			assert.Nil(t, got)
			require.ErrorIs(t, err, domain.ErrParse)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "error %q should mention %q", err, tt.wantMsg)
		})
	}
}

func TestStore_LoadIsLenient(t *testing.T) {
	store := NewStore(NewULIDGenerator())
	path := writeFile(t, "ledger.csv", "\ufeff description , AMOUNT\nGroceries,-42.50\n\nPaycheck, 1500.00 \n")

	got, err := store.Load(context.Background(), path, signedHeader)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(rec("Groceries", "-42.50")))
	assert.True(t, got[1].Equal(rec("Paycheck", "1500")))
}

func TestStore_LoadDirectoryIsIOError(t *testing.T) {
	store := NewStore(NewULIDGenerator())

	_, err := store.Load(context.Background(), t.TempDir(), signedHeader)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestULIDGenerator_SuffixesAreDistinct(t *testing.T) {
	gen := NewULIDGenerator()

	first, second := gen.Generate(), gen.Generate()
	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
}
