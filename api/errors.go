// File: api/errors.go
//
// Common error types and error handling utilities for the NonSTL library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrAllocationFailure = fmt.Errorf("allocation failure")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
)

// BoundsError reports a checked access outside the live element range.
// Only checked accessors (At) produce it; unchecked accessors are
// precondition-only by contract.
type BoundsError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

// NewBoundsError creates a BoundsError for index i against length n.
func NewBoundsError(i, n int) *BoundsError {
	return &BoundsError{Index: i, Length: n}
}
