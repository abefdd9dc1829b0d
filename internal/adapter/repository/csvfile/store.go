package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iho/pocketledger/internal/domain"
)

// Store persists ledgers as two-column CSV files.
type Store struct {
	idGen IDGenerator
}

// NewStore creates a Store that names temp files with idGen.
func NewStore(idGen IDGenerator) *Store {
	return &Store{idGen: idGen}
}

// Save overwrites path with records. The data is written to a temp file in
// the same directory and renamed over path, so a failed save leaves the
// previous file untouched.
func (s *Store) Save(ctx context.Context, path string, header domain.Header, records []domain.Record) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if path == "" {
		return fmt.Errorf("%w: empty file path", domain.ErrIO)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp := filepath.Join(dir, "."+base+"."+s.idGen.Generate()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrIO, tmp, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = Encode(f, header, records); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrIO, path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", domain.ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrIO, path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrIO, path, err)
	}

	return nil
}

// Load reads every record from path. Nothing is returned unless the whole
// file parses.
func (s *Store) Load(ctx context.Context, path string, header domain.Header) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrIO, path, err)
	}
	defer f.Close()

	records, err := Decode(f, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}
