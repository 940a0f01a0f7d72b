package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the engine and its callers.
var (
	// ErrAtomicNumberOutOfRange is returned for atomic numbers outside [1, 118].
	ErrAtomicNumberOutOfRange = errors.New("atomic number out of range")
	// ErrMalformedConfiguration is returned when configuration text cannot be parsed.
	ErrMalformedConfiguration = errors.New("malformed electron configuration")
)

// RangeError reports an atomic number outside the supported table.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("atomic number %d out of range [%d, %d]", e.Value, MinAtomicNumber, MaxAtomicNumber)
}

// Unwrap allows errors.Is(err, ErrAtomicNumberOutOfRange).
func (e *RangeError) Unwrap() error {
	return ErrAtomicNumberOutOfRange
}
