package persist

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: data may be corrupted")
	ErrTruncated          = errors.New("unexpected end of data")
)

// FormatError describes a structural problem with an encoded network:
// ragged weight rows, a weight/bias length mismatch, a broken width
// chain, or an unusable activation tag.
type FormatError struct {
	Layer   int    // Layer index, or -1 for a network-level problem
	Field   string // Field involved (e.g. "weights", "activation")
	Details string // Additional details
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Layer < 0 {
		return fmt.Sprintf("network: %s: %s", e.Field, e.Details)
	}
	return fmt.Sprintf("layer %d: %s: %s", e.Layer, e.Field, e.Details)
}
