package array

import (
	"errors"
	"testing"
)

func TestSlice(t *testing.T) {
	l := RowMajor(10)
	nl, delta, err := l.Slice(0, 2, 10)
	if err != nil {
		t.Fatalf("slice failed: %v", err)
	}
	assertEqualLayout(t, Layout{{Low: 0, High: 8, Stride: 1}}, nl, "sliced layout")
	assertEqualInt64(t, 2, delta, "offset delta")
}

func TestSliceKeepsStride(t *testing.T) {
	l := RowMajor(3, 4)
	nl, delta, err := l.Slice(0, 1, 3)
	if err != nil {
		t.Fatalf("slice failed: %v", err)
	}
	assertEqualLayout(t, Layout{{Low: 0, High: 2, Stride: 4}, {Low: 0, High: 4, Stride: 1}}, nl, "sliced layout")
	assertEqualInt64(t, 4, delta, "offset delta is lo*stride")
}

func TestSliceBadWindow(t *testing.T) {
	l := RowMajor(10)
	for _, w := range [][2]int64{{-1, 5}, {5, 11}, {7, 3}} {
		if _, _, err := l.Slice(0, w[0], w[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("slice [%d,%d): expected ErrOutOfRange, got %v", w[0], w[1], err)
		}
	}
	if _, _, err := l.Slice(1, 0, 1); !errors.Is(err, ErrRankMismatch) {
		t.Error("expected ErrRankMismatch for a bad dimension number")
	}
}

func TestReshape(t *testing.T) {
	l := RowMajor(3, 4)
	nl, err := l.Reshape(2, 6)
	if err != nil {
		t.Fatalf("reshape failed: %v", err)
	}
	assertEqualLayout(t, RowMajor(2, 6), nl, "reshaped layout")
	assertEqualInt64(t, l.NumElements(), nl.NumElements(), "element count preserved")
}

func TestReshapeSizeMismatch(t *testing.T) {
	l := RowMajor(3, 4)
	if _, err := l.Reshape(5, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	// The receiver is untouched either way.
	assertEqualLayout(t, RowMajor(3, 4), l, "receiver unchanged")
}

func TestTranspose(t *testing.T) {
	l := RowMajor(3, 4, 5)
	nl, err := l.Transpose(2, 0, 1)
	if err != nil {
		t.Fatalf("transpose failed: %v", err)
	}
	assertEqualLayout(t, Layout{l[2], l[0], l[1]}, nl, "entries carried unchanged")
}

func TestTransposeBadPermutation(t *testing.T) {
	l := RowMajor(3, 4)
	if _, err := l.Transpose(0); !errors.Is(err, ErrRankMismatch) {
		t.Error("expected ErrRankMismatch for a short permutation")
	}
	for _, perm := range [][]int{{0, 0}, {0, 2}, {-1, 0}} {
		if _, err := l.Transpose(perm...); !errors.Is(err, ErrBadPermutation) {
			t.Errorf("permutation %v: expected ErrBadPermutation, got %v", perm, err)
		}
	}
}

func TestReverse(t *testing.T) {
	l := RowMajor(10)
	nl, delta, err := l.Reverse(0)
	if err != nil {
		t.Fatalf("reverse failed: %v", err)
	}
	assertEqualLayout(t, Layout{{Low: 0, High: 10, Stride: -1}}, nl, "stride negated")
	assertEqualInt64(t, 9, delta, "origin moved to the old last element")

	// Index i of the reversed layout addresses old index 9-i.
	for i := int64(0); i < 10; i++ {
		old := Offset(l, []int64{9 - i}, nil)
		rev := delta + Offset(nl, []int64{i}, nil)
		assertEqualInt64(t, old, rev, "reversed addressing")
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	l := RowMajor(3, 4)
	one, d1, err := l.Reverse(1)
	if err != nil {
		t.Fatal(err)
	}
	two, d2, err := one.Reverse(1)
	if err != nil {
		t.Fatal(err)
	}
	assertEqualLayout(t, l, two, "double reversal restores the layout")
	assertEqualInt64(t, 0, d1+d2, "offset deltas cancel")
}

func TestReverseEmptyDimension(t *testing.T) {
	l := Layout{{Low: 0, High: 0, Stride: 1}}
	nl, delta, err := l.Reverse(0)
	if err != nil {
		t.Fatal(err)
	}
	assertEqualInt64(t, 0, delta, "empty dimension needs no origin shift")
	assertEqualInt64(t, -1, nl[0].Stride, "stride still negated")
}
