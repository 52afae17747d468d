// Copyright 2026 Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"unsafe"

	"github.com/strided-ml/strided/internal/array"
)

// Element is a constraint for supported array element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type Element = array.Element

// Kind represents the runtime element kind of a view.
type Kind = array.Kind

// Element kind constants.
const (
	Float32 Kind = array.Float32
	Float64 Kind = array.Float64
	Int32   Kind = array.Int32
	Int64   Kind = array.Int64
	Uint8   Kind = array.Uint8
	Bool    Kind = array.Bool
)

// Dope describes one dimension: the half-open index range [Low, High) and
// the signed element stride.
type Dope = array.Dope

// Layout is a dope vector; its length is the array's rank.
type Layout = array.Layout

// Buffer is a contiguous byte region, owned or borrowed.
type Buffer = array.Buffer

// RangeErrorFn is the diagnostic callback invoked on a detected bounds
// violation while checking is compiled in.
type RangeErrorFn = array.RangeErrorFn

// ConstView is the read-only runtime-rank array view.
type ConstView[T Element] = array.ConstView[T]

// View is the writable runtime-rank array view.
type View[T Element] = array.View[T]

// Fixed-rank views: rank and index arity are fixed at compile time.
type (
	View1[T Element] = array.View1[T]
	View2[T Element] = array.View2[T]
	View3[T Element] = array.View3[T]
	View4[T Element] = array.View4[T]
)

// Errors reported by the engine. Range violations on the indexing hot path
// are reported through RangeErrorFn instead, never as error returns.
var (
	ErrOutOfRange     = array.ErrOutOfRange
	ErrRankMismatch   = array.ErrRankMismatch
	ErrSizeMismatch   = array.ErrSizeMismatch
	ErrAllocation     = array.ErrAllocation
	ErrBadPermutation = array.ErrBadPermutation
	ErrReadOnly       = array.ErrReadOnly
)

// NewOwned allocates size bytes of zeroed memory and returns the sole
// handle on it.
func NewOwned(size int64) (*Buffer, error) {
	return array.NewOwned(size)
}

// Borrow wraps caller-supplied memory; the buffer never frees it.
func Borrow(data []byte) *Buffer {
	return array.Borrow(data)
}

// BorrowPointer wraps size bytes of foreign memory starting at base.
func BorrowPointer(base unsafe.Pointer, size int64) *Buffer {
	return array.BorrowPointer(base, size)
}

// RowMajor builds the canonical contiguous row-major layout for the given
// extents.
func RowMajor(extents ...int64) Layout {
	return array.RowMajor(extents...)
}

// ColMajor builds the canonical contiguous column-major layout for the
// given extents.
func ColMajor(extents ...int64) Layout {
	return array.ColMajor(extents...)
}

// Offset maps a multi-index to a linear element offset through the shared
// offset engine. Exposed for layers that bring their own storage access.
func Offset(dopes []Dope, index []int64, diag RangeErrorFn) int64 {
	return array.Offset(dopes, index, diag)
}

// NewView couples a Buffer and a Layout into a writable view.
func NewView[T Element](buf *Buffer, layout Layout) (*View[T], error) {
	return array.NewView[T](buf, layout)
}

// NewConstView couples a Buffer and a Layout into a read-only view.
func NewConstView[T Element](buf *Buffer, layout Layout) (*ConstView[T], error) {
	return array.NewConstView[T](buf, layout)
}

// KindOf infers the element kind for a generic element type.
func KindOf[T Element]() Kind {
	return array.KindOf[T]()
}

// KindByName maps an element kind name ("float64", "int32", ...) back to
// its Kind. The second result is false for an unrecognized name.
func KindByName(name string) (Kind, bool) {
	return array.KindByName(name)
}
