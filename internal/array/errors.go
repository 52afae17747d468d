package array

import "errors"

// Common errors
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrRankMismatch   = errors.New("rank mismatch")
	ErrSizeMismatch   = errors.New("element count mismatch")
	ErrAllocation     = errors.New("buffer allocation failed")
	ErrBadPermutation = errors.New("invalid dimension permutation")
	ErrReadOnly       = errors.New("buffer is read-only")
)
