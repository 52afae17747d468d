package array

import "fmt"

// Slice narrows dimension dim to the index window [lo, hi) of the original
// range and rebases it to [0, hi-lo). The second result is the element-offset
// delta the caller must add to its base offset so that new index 0 addresses
// the element old index lo addressed. The stride is unchanged.
func (l Layout) Slice(dim int, lo, hi int64) (Layout, int64, error) {
	if dim < 0 || dim >= len(l) {
		return nil, 0, fmt.Errorf("slice dimension %d of rank-%d layout: %w", dim, len(l), ErrRankMismatch)
	}
	d := l[dim]
	if lo < d.Low || hi < lo || hi > d.High {
		return nil, 0, fmt.Errorf("slice window [%d,%d) outside dimension %d range [%d,%d): %w",
			lo, hi, dim, d.Low, d.High, ErrOutOfRange)
	}
	out := l.Clone()
	out[dim].Low = 0
	out[dim].High = hi - lo
	return out, lo * d.Stride, nil
}

// Reshape replaces the dope sequence with the canonical row-major layout for
// the given extents. The total element count must be preserved; otherwise
// ErrSizeMismatch is returned and nothing changes. The receiver is assumed
// to be contiguous in canonical order; reshaping a permuted or sliced layout
// reinterprets the underlying memory, not the logical traversal order.
func (l Layout) Reshape(extents ...int64) (Layout, error) {
	n := int64(1)
	for i, e := range extents {
		if e < 0 {
			return nil, fmt.Errorf("reshape extent %d at dimension %d: %w", e, i, ErrSizeMismatch)
		}
		n *= e
	}
	if n != l.NumElements() {
		return nil, fmt.Errorf("reshape %v (%d elements) to %v (%d elements): %w",
			l.Extents(), l.NumElements(), extents, n, ErrSizeMismatch)
	}
	return RowMajor(extents...), nil
}

// Transpose reorders the dope entries according to perm: entry i of the
// result is entry perm[i] of the receiver, carried unchanged. perm must be
// a permutation of 0..rank-1.
func (l Layout) Transpose(perm ...int) (Layout, error) {
	if len(perm) != len(l) {
		return nil, fmt.Errorf("permutation of length %d for rank-%d layout: %w", len(perm), len(l), ErrRankMismatch)
	}
	seen := make([]bool, len(l))
	out := make(Layout, len(l))
	for i, p := range perm {
		if p < 0 || p >= len(l) || seen[p] {
			return nil, fmt.Errorf("permutation %v: %w", perm, ErrBadPermutation)
		}
		seen[p] = true
		out[i] = l[p]
	}
	return out, nil
}

// Reverse flips the traversal direction of dimension dim by negating its
// stride. The second result is the element-offset delta the caller must add
// to its base offset so that the dimension's lowest index addresses the
// element its highest index addressed before the flip.
func (l Layout) Reverse(dim int) (Layout, int64, error) {
	if dim < 0 || dim >= len(l) {
		return nil, 0, fmt.Errorf("reverse dimension %d of rank-%d layout: %w", dim, len(l), ErrRankMismatch)
	}
	d := l[dim]
	out := l.Clone()
	out[dim].Stride = -d.Stride
	if d.Extent() == 0 {
		return out, 0, nil
	}
	// base + (Low+High-1-i)*s == base + delta + i*(-s) for all i in [Low,High)
	return out, (d.Low + d.High - 1) * d.Stride, nil
}
