package array

import "fmt"

// Labels carried by diagnostic invocations.
const (
	labelIndexing = "Indexing"
	labelMemory   = "Memory"
)

// RangeErrorFn is the diagnostic callback invoked on a detected bounds
// violation while checking is compiled in. label is "Indexing" for a
// per-dimension range violation and "Memory" for a byte-level buffer
// violation; dim is the violated dimension (always 0 for "Memory"); [low,
// high) are the valid bounds and index is the offending value. The engine
// continues after the callback returns: any recovery, abort, or error
// translation happens inside the callback body.
type RangeErrorFn func(label string, dim int, low, high, index int64)

// failRange is the policy applied when checking is compiled in and no
// diagnostic was supplied: fail fast.
func failRange(label string, dim int, low, high, index int64) {
	panic(fmt.Sprintf("%s: index %d outside [%d,%d) in dimension %d", label, index, low, high, dim))
}

// Offset maps a multi-index to a linear element offset relative to the
// layout origin: sum over i of index[i]*dopes[i].Stride. len(index) must be
// at least len(dopes); arity enforcement belongs to the caller.
//
// With range checks compiled in, each index is validated against its
// dimension's [Low, High) in ascending dimension order before the sum is
// taken. The first violation invokes diag, or the fail-fast default when
// diag is nil, naming the lowest violated dimension; the sum is still
// computed and returned afterwards. This is the single offset algorithm
// shared by every view variant.
func Offset(dopes []Dope, index []int64, diag RangeErrorFn) int64 {
	if rangeChecks {
		checkBounds(dopes, index, diag)
	}
	var off int64
	for i := range dopes {
		off += index[i] * dopes[i].Stride
	}
	return off
}

// checkBounds validates index against dopes dimension by dimension and
// reports the first violation, if any.
func checkBounds(dopes []Dope, index []int64, diag RangeErrorFn) {
	for i, d := range dopes {
		if ix := index[i]; ix < d.Low || ix >= d.High {
			if diag == nil {
				failRange(labelIndexing, i, d.Low, d.High, ix)
			}
			diag(labelIndexing, i, d.Low, d.High, ix)
			return
		}
	}
}
