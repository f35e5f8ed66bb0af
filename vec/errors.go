package vec

import (
	"errors"
	"fmt"
)

// ErrZeroVector is the panic value when a zero-length vector is
// normalized.
var ErrZeroVector = errors.New("vec: cannot normalize a zero vector")

// SizeMismatchError is the panic value when a binary operation is
// applied to vectors of different sizes. It carries both sizes for
// diagnostics.
type SizeMismatchError struct {
	Size      int // size of the receiver
	OtherSize int // size of the other operand
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("vec: vectors must be the same size: %d vs %d", e.Size, e.OtherSize)
}

// IndexError is the panic value when a component index is outside
// [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vec: index out of range: %d with size %d", e.Index, e.Size)
}

// DimensionError is the panic value when a cross product is requested
// for vectors that are not 3-dimensional.
type DimensionError struct {
	Size int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vec: cross product requires 3-dimensional vectors: got size %d", e.Size)
}
