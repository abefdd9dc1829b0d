package domain

import "errors"

var (
	// Input errors
	ErrEmptyLabel      = errors.New("label must not be empty")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidKind     = errors.New("invalid kind")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Persistence errors
	ErrFileNotFound = errors.New("file not found")
	ErrParse        = errors.New("parse error")
	ErrIO           = errors.New("i/o error")
)

// ErrorKind returns a short stable name for the ledger error wrapped by err,
// or "internal" when err is not one of them.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyLabel):
		return "empty_label"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrIO):
		return "io_error"
	default:
		return "internal"
	}
}

// IsUserError reports whether err is correctable by re-entering input.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyLabel) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrIndexOutOfRange)
}
