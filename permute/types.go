// Package permute error definitions: the taxonomy is precondition
// violations only — there is no transient-failure mode to recover from.
package permute

import "errors"

var (
	// ErrZeroLength is returned when a permutation over zero elements is requested.
	ErrZeroLength = errors.New("permute: length must be >= 1")

	// ErrIndexOutOfRange is returned when idx does not lie in [0, length).
	ErrIndexOutOfRange = errors.New("permute: index out of range")
)
