package array

import (
	"fmt"
	"unsafe"
)

// Fixed-rank views are the counterpart of View for ranks known at compile
// time: the index arity is part of the At/Set signature, so arity errors are
// compile errors and no runtime rank check exists on the access path. They
// share the offset engine and buffer access with the runtime-rank views and
// are the intended fast path for code layered on top of them. Ranks above 4
// use the runtime-rank View, the documented slow path.

// View1 is a writable fixed-rank view of rank 1.
type View1[T Element] struct {
	buf    *Buffer
	dopes  [1]Dope
	offset int64
	diag   RangeErrorFn
}

// View2 is a writable fixed-rank view of rank 2.
type View2[T Element] struct {
	buf    *Buffer
	dopes  [2]Dope
	offset int64
	diag   RangeErrorFn
}

// View3 is a writable fixed-rank view of rank 3.
type View3[T Element] struct {
	buf    *Buffer
	dopes  [3]Dope
	offset int64
	diag   RangeErrorFn
}

// View4 is a writable fixed-rank view of rank 4.
type View4[T Element] struct {
	buf    *Buffer
	dopes  [4]Dope
	offset int64
	diag   RangeErrorFn
}

func fixedRankErr(want, got int) error {
	return fmt.Errorf("fixed rank-%d view over rank-%d layout: %w", want, got, ErrRankMismatch)
}

// Fixed1 converts the view to its rank-1 fixed-rank form.
// Returns ErrRankMismatch when the runtime rank is not 1.
func (v *View[T]) Fixed1() (*View1[T], error) {
	if len(v.layout) != 1 {
		return nil, fixedRankErr(1, len(v.layout))
	}
	f := &View1[T]{buf: v.buf.Retain(), offset: v.offset, diag: v.diag}
	copy(f.dopes[:], v.layout)
	return f, nil
}

// Fixed2 converts the view to its rank-2 fixed-rank form.
// Returns ErrRankMismatch when the runtime rank is not 2.
func (v *View[T]) Fixed2() (*View2[T], error) {
	if len(v.layout) != 2 {
		return nil, fixedRankErr(2, len(v.layout))
	}
	f := &View2[T]{buf: v.buf.Retain(), offset: v.offset, diag: v.diag}
	copy(f.dopes[:], v.layout)
	return f, nil
}

// Fixed3 converts the view to its rank-3 fixed-rank form.
// Returns ErrRankMismatch when the runtime rank is not 3.
func (v *View[T]) Fixed3() (*View3[T], error) {
	if len(v.layout) != 3 {
		return nil, fixedRankErr(3, len(v.layout))
	}
	f := &View3[T]{buf: v.buf.Retain(), offset: v.offset, diag: v.diag}
	copy(f.dopes[:], v.layout)
	return f, nil
}

// Fixed4 converts the view to its rank-4 fixed-rank form.
// Returns ErrRankMismatch when the runtime rank is not 4.
func (v *View[T]) Fixed4() (*View4[T], error) {
	if len(v.layout) != 4 {
		return nil, fixedRankErr(4, len(v.layout))
	}
	f := &View4[T]{buf: v.buf.Retain(), offset: v.offset, diag: v.diag}
	copy(f.dopes[:], v.layout)
	return f, nil
}

func fixedElem[T Element](buf *Buffer, dopes []Dope, offset int64, index []int64, diag RangeErrorFn) *T {
	off := offset + Offset(dopes, index, diag)
	p := buf.ByteAt(off*sizeOf[T](), diag)
	return (*T)(unsafe.Pointer(p))
}

// Rank returns 1.
func (v *View1[T]) Rank() int { return 1 }

// At returns the element at index i.
func (v *View1[T]) At(i int64) T {
	idx := [1]int64{i}
	return *fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag)
}

// Set stores val at index i.
func (v *View1[T]) Set(val T, i int64) {
	idx := [1]int64{i}
	*fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag) = val
}

// General returns the runtime-rank form of the view.
func (v *View1[T]) General() *View[T] {
	return fixedGeneral[T](v.buf, v.dopes[:], v.offset, v.diag)
}

// WithDiagnostic returns a view whose range violations invoke fn instead of
// the fail-fast default.
func (v *View1[T]) WithDiagnostic(fn RangeErrorFn) *View1[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.diag = fn
	return &nv
}

// Release drops the view's buffer handle.
func (v *View1[T]) Release() { v.buf.Release() }

// Rank returns 2.
func (v *View2[T]) Rank() int { return 2 }

// At returns the element at index (i, j).
func (v *View2[T]) At(i, j int64) T {
	idx := [2]int64{i, j}
	return *fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag)
}

// Set stores val at index (i, j).
func (v *View2[T]) Set(val T, i, j int64) {
	idx := [2]int64{i, j}
	*fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag) = val
}

// General returns the runtime-rank form of the view.
func (v *View2[T]) General() *View[T] {
	return fixedGeneral[T](v.buf, v.dopes[:], v.offset, v.diag)
}

// WithDiagnostic returns a view whose range violations invoke fn instead of
// the fail-fast default.
func (v *View2[T]) WithDiagnostic(fn RangeErrorFn) *View2[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.diag = fn
	return &nv
}

// Release drops the view's buffer handle.
func (v *View2[T]) Release() { v.buf.Release() }

// Rank returns 3.
func (v *View3[T]) Rank() int { return 3 }

// At returns the element at index (i, j, k).
func (v *View3[T]) At(i, j, k int64) T {
	idx := [3]int64{i, j, k}
	return *fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag)
}

// Set stores val at index (i, j, k).
func (v *View3[T]) Set(val T, i, j, k int64) {
	idx := [3]int64{i, j, k}
	*fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag) = val
}

// General returns the runtime-rank form of the view.
func (v *View3[T]) General() *View[T] {
	return fixedGeneral[T](v.buf, v.dopes[:], v.offset, v.diag)
}

// WithDiagnostic returns a view whose range violations invoke fn instead of
// the fail-fast default.
func (v *View3[T]) WithDiagnostic(fn RangeErrorFn) *View3[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.diag = fn
	return &nv
}

// Release drops the view's buffer handle.
func (v *View3[T]) Release() { v.buf.Release() }

// Rank returns 4.
func (v *View4[T]) Rank() int { return 4 }

// At returns the element at index (i, j, k, l).
func (v *View4[T]) At(i, j, k, l int64) T {
	idx := [4]int64{i, j, k, l}
	return *fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag)
}

// Set stores val at index (i, j, k, l).
func (v *View4[T]) Set(val T, i, j, k, l int64) {
	idx := [4]int64{i, j, k, l}
	*fixedElem[T](v.buf, v.dopes[:], v.offset, idx[:], v.diag) = val
}

// General returns the runtime-rank form of the view.
func (v *View4[T]) General() *View[T] {
	return fixedGeneral[T](v.buf, v.dopes[:], v.offset, v.diag)
}

// WithDiagnostic returns a view whose range violations invoke fn instead of
// the fail-fast default.
func (v *View4[T]) WithDiagnostic(fn RangeErrorFn) *View4[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.diag = fn
	return &nv
}

// Release drops the view's buffer handle.
func (v *View4[T]) Release() { v.buf.Release() }

func fixedGeneral[T Element](buf *Buffer, dopes []Dope, offset int64, diag RangeErrorFn) *View[T] {
	return &View[T]{ConstView: ConstView[T]{
		buf:    buf.Retain(),
		layout: Layout(dopes).Clone(),
		offset: offset,
		diag:   diag,
	}}
}
