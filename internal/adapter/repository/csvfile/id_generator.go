package csvfile

import (
	"github.com/oklog/ulid/v2"
)

// IDGenerator names temporary files written during a save.
type IDGenerator interface {
	Generate() string
}

// ULIDGenerator suffixes temp files with ULIDs so saves racing on the same
// ledger never share a scratch file.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a fresh temp-file suffix.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
