package fstree

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when an operation targets an index outside the
// current row list. Seeing it means a caller failed to re-clamp its cursor.
var ErrInvalidIndex = errors.New("invalid row index")

// ScanError reports a directory that could not be listed.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func invalidIndex(index, length int) error {
	return fmt.Errorf("%w: %d (rows: %d)", ErrInvalidIndex, index, length)
}
