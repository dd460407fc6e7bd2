package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")

	// ErrSizeMismatch indicates the cell buffer length is not width*height.
	ErrSizeMismatch = errors.New("grid: cell count does not match width*height")

	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")

	// ErrInvalidCell indicates a character outside the cell alphabet.
	ErrInvalidCell = errors.New("grid: invalid cell character")

	// ErrInvalidHeading indicates an unknown heading symbol.
	ErrInvalidHeading = errors.New("grid: invalid heading")
)

// CellError reports the offending cell of a rejected map.
type CellError struct {
	Index int
	Cell  byte
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s %q at index %d", ErrInvalidCell, e.Cell, e.Index)
}

func (e *CellError) Unwrap() error {
	return ErrInvalidCell
}
