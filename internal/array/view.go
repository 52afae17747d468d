package array

import (
	"fmt"
	"unsafe"
)

// ConstView is the read-only runtime-rank array view: a Buffer handle plus a
// dope-vector Layout whose rank is a runtime value. It is a lightweight
// value; copying one explicitly via Retain follows the buffer's own
// ownership mode. ConstView carries the read capability only — there is no
// operation on it that yields a writable address.
type ConstView[T Element] struct {
	buf    *Buffer
	layout Layout
	offset int64 // element offset of the logical index origin
	diag   RangeErrorFn
}

// View is the writable runtime-rank array view. It extends ConstView's read
// surface with the write capability; both share the same layout and offset
// machinery.
type View[T Element] struct {
	ConstView[T]
}

func newConst[T Element](buf *Buffer, layout Layout, offset int64, diag RangeErrorFn) (ConstView[T], error) {
	if min, max, ok := layout.Span(); ok {
		capElems := buf.Size() / sizeOf[T]()
		if offset+min < 0 || offset+max >= capElems {
			return ConstView[T]{}, fmt.Errorf("layout %v spans elements [%d,%d] of a %d-element buffer: %w",
				layout, offset+min, offset+max, capElems, ErrOutOfRange)
		}
	}
	return ConstView[T]{buf: buf.Retain(), layout: layout.Clone(), offset: offset, diag: diag}, nil
}

// NewConstView couples a Buffer and a Layout into a read-only view. The
// layout's reachable offsets must fit the buffer.
func NewConstView[T Element](buf *Buffer, layout Layout) (*ConstView[T], error) {
	cv, err := newConst[T](buf, layout, 0, nil)
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

// NewView couples a Buffer and a Layout into a writable view. The buffer
// must not be read-only and the layout's reachable offsets must fit it.
func NewView[T Element](buf *Buffer, layout Layout) (*View[T], error) {
	if buf.ReadOnly() {
		return nil, fmt.Errorf("writable view: %w", ErrReadOnly)
	}
	cv, err := newConst[T](buf, layout, 0, nil)
	if err != nil {
		return nil, err
	}
	return &View[T]{ConstView: cv}, nil
}

// Rank returns the number of dimensions.
func (v *ConstView[T]) Rank() int {
	return len(v.layout)
}

// Layout returns a copy of the view's dope vector.
func (v *ConstView[T]) Layout() Layout {
	return v.layout.Clone()
}

// Offset returns the element offset of the view's logical origin within its
// buffer.
func (v *ConstView[T]) Offset() int64 {
	return v.offset
}

// Buffer returns the view's buffer handle.
func (v *ConstView[T]) Buffer() *Buffer {
	return v.buf
}

// Kind returns the runtime element kind.
func (v *ConstView[T]) Kind() Kind {
	return KindOf[T]()
}

// NumElements returns the total number of addressable elements.
func (v *ConstView[T]) NumElements() int64 {
	return v.layout.NumElements()
}

// Extents returns the per-dimension extents.
func (v *ConstView[T]) Extents() []int64 {
	return v.layout.Extents()
}

// String returns a human-readable description of the view.
func (v *ConstView[T]) String() string {
	mode := "borrowed"
	if v.buf.Owned() {
		mode = "owned"
	}
	return fmt.Sprintf("View[%s]{%s @%d, %s}", KindOf[T](), v.layout, v.offset, mode)
}

// arity panics on an index-sequence length that does not match the rank.
// This is structural misuse, reported synchronously and never routed
// through the diagnostic callback.
func (v *ConstView[T]) arity(n int) {
	if n != len(v.layout) {
		panic(fmt.Sprintf("rank mismatch: %d indices for rank-%d view", n, len(v.layout)))
	}
}

// elem resolves a multi-index to the element address: the shared offset
// engine maps it to an element offset, the buffer maps that to memory.
func (v *ConstView[T]) elem(index []int64) *T {
	off := v.offset + Offset(v.layout, index, v.diag)
	p := v.buf.ByteAt(off*sizeOf[T](), v.diag)
	return (*T)(unsafe.Pointer(p))
}

// At returns the element at the given multi-index. The index arity must
// equal Rank(); a mismatch panics. Range violations follow the view's
// diagnostic policy.
func (v *ConstView[T]) At(index ...int64) T {
	v.arity(len(index))
	return *v.elem(index)
}

// Set stores val at the given multi-index. Same arity and range rules as At.
func (v *View[T]) Set(val T, index ...int64) {
	v.arity(len(index))
	*v.elem(index) = val
}

// WithDiagnostic returns a view whose range violations invoke fn instead of
// the fail-fast default. fn is called only while checking is compiled in
// and must not be relied on to alter control flow.
func (v *ConstView[T]) WithDiagnostic(fn RangeErrorFn) *ConstView[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.diag = fn
	return &nv
}

// WithDiagnostic is the writable-view counterpart of
// ConstView.WithDiagnostic.
func (v *View[T]) WithDiagnostic(fn RangeErrorFn) *View[T] {
	return &View[T]{ConstView: *v.ConstView.WithDiagnostic(fn)}
}

// Retain returns a copy of the view holding its own buffer handle, per the
// buffer's ownership mode.
func (v *ConstView[T]) Retain() *ConstView[T] {
	nv := *v
	nv.buf = v.buf.Retain()
	nv.layout = v.layout.Clone()
	return &nv
}

// Retain is the writable-view counterpart of ConstView.Retain.
func (v *View[T]) Retain() *View[T] {
	return &View[T]{ConstView: *v.ConstView.Retain()}
}

// Release drops the view's buffer handle. Releasing the last owning view
// frees the buffer; releasing a borrowing view never frees anything. The
// view must not be used afterwards.
func (v *ConstView[T]) Release() {
	v.buf.Release()
}

// Freeze returns a read-only view of the same elements. The result cannot
// be turned back into a writable view.
func (v *View[T]) Freeze() *ConstView[T] {
	nv := v.ConstView
	nv.buf = v.buf.Freeze()
	nv.layout = v.layout.Clone()
	return &nv
}

// derive builds a view over the same buffer with a new layout and a base
// offset shifted by delta, re-validating that the result stays inside the
// buffer.
func (v *ConstView[T]) derive(nl Layout, delta int64) (*ConstView[T], error) {
	nv, err := newConst[T](v.buf, nl, v.offset+delta, v.diag)
	if err != nil {
		return nil, err
	}
	return &nv, nil
}

// Slice narrows dimension dim to the index window [lo, hi), rebased to
// local indices [0, hi-lo). The result shares the buffer in the same
// ownership mode.
func (v *ConstView[T]) Slice(dim int, lo, hi int64) (*ConstView[T], error) {
	nl, delta, err := v.layout.Slice(dim, lo, hi)
	if err != nil {
		return nil, err
	}
	return v.derive(nl, delta)
}

// Reshape replaces the view's layout with the canonical row-major layout
// for the given extents, preserving the total element count.
func (v *ConstView[T]) Reshape(extents ...int64) (*ConstView[T], error) {
	nl, err := v.layout.Reshape(extents...)
	if err != nil {
		return nil, err
	}
	return v.derive(nl, 0)
}

// Transpose reorders the view's dimensions according to perm.
func (v *ConstView[T]) Transpose(perm ...int) (*ConstView[T], error) {
	nl, err := v.layout.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return v.derive(nl, 0)
}

// Reverse flips the traversal direction of dimension dim: local index 0 of
// the result addresses the element the highest index addressed before.
func (v *ConstView[T]) Reverse(dim int) (*ConstView[T], error) {
	nl, delta, err := v.layout.Reverse(dim)
	if err != nil {
		return nil, err
	}
	return v.derive(nl, delta)
}

// Slice is the writable-view counterpart of ConstView.Slice.
func (v *View[T]) Slice(dim int, lo, hi int64) (*View[T], error) {
	cv, err := v.ConstView.Slice(dim, lo, hi)
	if err != nil {
		return nil, err
	}
	return &View[T]{ConstView: *cv}, nil
}

// Reshape is the writable-view counterpart of ConstView.Reshape.
func (v *View[T]) Reshape(extents ...int64) (*View[T], error) {
	cv, err := v.ConstView.Reshape(extents...)
	if err != nil {
		return nil, err
	}
	return &View[T]{ConstView: *cv}, nil
}

// Transpose is the writable-view counterpart of ConstView.Transpose.
func (v *View[T]) Transpose(perm ...int) (*View[T], error) {
	cv, err := v.ConstView.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return &View[T]{ConstView: *cv}, nil
}

// Reverse is the writable-view counterpart of ConstView.Reverse.
func (v *View[T]) Reverse(dim int) (*View[T], error) {
	cv, err := v.ConstView.Reverse(dim)
	if err != nil {
		return nil, err
	}
	return &View[T]{ConstView: *cv}, nil
}
