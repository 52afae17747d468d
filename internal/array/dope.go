package array

import (
	"fmt"
	"strings"
)

// Dope describes one dimension of a strided array: the half-open range
// [Low, High) of valid indices and the signed stride, in elements, that
// advances the dimension's index by one. Stride may be negative (reversed
// traversal) or zero (broadcast). High <= Low denotes an empty dimension.
// No normalization is performed at construction.
type Dope struct {
	Low    int64
	High   int64
	Stride int64
	Name   string // optional, reported in diagnostics and tooling
}

// Extent returns the number of valid indices in the dimension.
func (d Dope) Extent() int64 {
	if d.High <= d.Low {
		return 0
	}
	return d.High - d.Low
}

// Contains reports whether ix falls inside [Low, High).
func (d Dope) Contains(ix int64) bool {
	return ix >= d.Low && ix < d.High
}

// String returns the dimension as "[low,high):stride".
func (d Dope) String() string {
	s := fmt.Sprintf("[%d,%d):%d", d.Low, d.High, d.Stride)
	if d.Name != "" {
		s = d.Name + s
	}
	return s
}

// Layout is a dope vector: an ordered sequence of dimension descriptors.
// Its length is the array's rank. The order of entries is independent of
// their physical stride magnitude, which is how dimension permutation and
// transposition are expressed. Layouts are value objects; derivation
// operations never mutate their receiver.
type Layout []Dope

// Rank returns the number of dimensions.
func (l Layout) Rank() int {
	return len(l)
}

// NumElements returns the total number of addressable elements.
// A rank-0 layout addresses exactly one element.
func (l Layout) NumElements() int64 {
	n := int64(1)
	for _, d := range l {
		n *= d.Extent()
	}
	return n
}

// Extents returns the per-dimension extents.
func (l Layout) Extents() []int64 {
	ext := make([]int64, len(l))
	for i, d := range l {
		ext[i] = d.Extent()
	}
	return ext
}

// Clone returns a copy of the layout.
func (l Layout) Clone() Layout {
	clone := make(Layout, len(l))
	copy(clone, l)
	return clone
}

// Equal checks if two layouts describe the same ranges and strides.
// Dimension names are ignored.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i].Low != other[i].Low || l[i].High != other[i].High || l[i].Stride != other[i].Stride {
			return false
		}
	}
	return true
}

// Span returns the inclusive range [min, max] of element offsets reachable
// by valid indices, relative to the layout origin. The second result is
// false when the layout addresses no element at all.
func (l Layout) Span() (min, max int64, ok bool) {
	if l.NumElements() == 0 {
		return 0, 0, false
	}
	for _, d := range l {
		lo := d.Low * d.Stride
		hi := (d.High - 1) * d.Stride
		if lo > hi {
			lo, hi = hi, lo
		}
		min += lo
		max += hi
	}
	return min, max, true
}

// String returns the layout as "dim x dim x ...".
func (l Layout) String() string {
	if len(l) == 0 {
		return "scalar"
	}
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = d.String()
	}
	return strings.Join(parts, " x ")
}

// RowMajor builds the canonical contiguous row-major (last dimension
// fastest) layout for the given extents, with every range starting at 0.
func RowMajor(extents ...int64) Layout {
	l := make(Layout, len(extents))
	stride := int64(1)
	for i := len(extents) - 1; i >= 0; i-- {
		l[i] = Dope{Low: 0, High: extents[i], Stride: stride}
		stride *= extents[i]
	}
	return l
}

// ColMajor builds the canonical contiguous column-major (first dimension
// fastest) layout for the given extents, with every range starting at 0.
func ColMajor(extents ...int64) Layout {
	l := make(Layout, len(extents))
	stride := int64(1)
	for i := 0; i < len(extents); i++ {
		l[i] = Dope{Low: 0, High: extents[i], Stride: stride}
		stride *= extents[i]
	}
	return l
}
