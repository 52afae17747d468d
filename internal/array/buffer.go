package array

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// block is the reference-counted backing store of an owned Buffer.
// The count is atomic so handles may be retained and released from
// different goroutines.
type block struct {
	data []byte
	refs atomic.Int32
}

func (b *block) retain() {
	b.refs.Add(1)
}

func (b *block) release() {
	if b.refs.Add(-1) == 0 {
		b.data = nil
	}
}

// Buffer is a contiguous byte region that is either owned (a reference to a
// shared heap block, freed when the last handle is released) or borrowed
// (foreign memory, never allocated or freed here). Access is uniform across
// the two modes; nothing above Buffer branches on ownership. The size is
// fixed at construction.
//
// Borrowed memory must outlive every view derived from the buffer. That is
// the caller's obligation; nothing tracks or enforces it.
type Buffer struct {
	blk      *block // nil when borrowed
	data     []byte
	readonly bool
}

// NewOwned allocates size bytes of zeroed memory and returns the sole handle
// on it. Returns ErrAllocation when the size cannot be represented.
func NewOwned(size int64) (*Buffer, error) {
	if size < 0 || size > math.MaxInt {
		return nil, fmt.Errorf("allocate %d bytes: %w", size, ErrAllocation)
	}
	blk := &block{data: make([]byte, size)}
	blk.refs.Store(1)
	return &Buffer{blk: blk, data: blk.data}, nil
}

// Borrow wraps caller-supplied memory. The buffer never frees it and no
// reference count exists.
func Borrow(data []byte) *Buffer {
	return &Buffer{data: data}
}

// BorrowPointer wraps size bytes of foreign memory starting at base, for
// regions that do not originate from a Go slice (C memory, mmap, shared
// segments). Same non-ownership contract as Borrow.
func BorrowPointer(base unsafe.Pointer, size int64) *Buffer {
	return &Buffer{data: unsafe.Slice((*byte)(base), size)}
}

// Owned reports whether the buffer owns its memory.
func (b *Buffer) Owned() bool {
	return b.blk != nil
}

// Size returns the region length in bytes.
func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

// ReadOnly reports whether the handle serves immutable elements only.
func (b *Buffer) ReadOnly() bool {
	return b.readonly
}

// IsUnique reports whether this is the only handle on an owned block.
// Borrowed buffers are never unique: the memory has at least one foreign
// owner.
func (b *Buffer) IsUnique() bool {
	return b.blk != nil && b.blk.refs.Load() == 1
}

// Retain returns a new handle on the same region. The ownership mode is
// copied verbatim: an owned buffer gains a reference, a borrowed buffer is
// re-borrowed with no ownership transfer.
func (b *Buffer) Retain() *Buffer {
	if b.blk != nil {
		b.blk.retain()
	}
	nb := *b
	return &nb
}

// Freeze returns a handle on the same region that serves immutable elements
// only. The restriction is a property of the handle, independent of whether
// the memory is physically writable; there is no way back to a writable
// handle through it.
func (b *Buffer) Freeze() *Buffer {
	nb := b.Retain()
	nb.readonly = true
	return nb
}

// Release drops this handle. Releasing the last handle on an owned block
// frees its memory; releasing a borrowed handle never frees anything.
// The handle must not be used afterwards.
func (b *Buffer) Release() {
	if b.blk != nil {
		b.blk.release()
	}
	b.data = nil
}

// ByteAt returns the address of the byte at off. With range checks compiled
// in, an offset outside [0, Size) invokes diag, or the fail-fast default
// when diag is nil, with the "Memory" label; once the diagnostic returns,
// the address is computed and returned unconditionally. With checks compiled
// out the comparison does not exist.
func (b *Buffer) ByteAt(off int64, diag RangeErrorFn) *byte {
	if rangeChecks && (off < 0 || off >= int64(len(b.data))) {
		if diag == nil {
			failRange(labelMemory, 0, 0, int64(len(b.data)), off)
		}
		diag(labelMemory, 0, 0, int64(len(b.data)), off)
	}
	return (*byte)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.data)), off))
}

// Bytes returns the raw byte region.
// Direct access to underlying memory; use with caution.
func (b *Buffer) Bytes() []byte {
	return b.data
}
