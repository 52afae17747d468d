package array

import (
	"strings"
	"testing"
)

type rangeCall struct {
	label     string
	dim       int
	low, high int64
	index     int64
}

// collectRange records diagnostic invocations for assertions.
func collectRange(calls *[]rangeCall) RangeErrorFn {
	return func(label string, dim int, low, high, index int64) {
		*calls = append(*calls, rangeCall{label, dim, low, high, index})
	}
}

func TestOffsetFormula(t *testing.T) {
	l := Layout{
		{Low: 0, High: 3, Stride: 20},
		{Low: 0, High: 4, Stride: 5},
		{Low: 0, High: 5, Stride: 1},
	}
	for _, tt := range []struct {
		index []int64
		want  int64
	}{
		{[]int64{0, 0, 0}, 0},
		{[]int64{1, 2, 3}, 33},
		{[]int64{2, 3, 4}, 59},
	} {
		assertEqualInt64(t, tt.want, Offset(l, tt.index, nil), "offset formula")
	}
}

func TestOffsetRowMajorScenario(t *testing.T) {
	// Extents (3,4), strides (4,1): index (1,2) resolves to 6.
	l := RowMajor(3, 4)
	assertEqualInt64(t, 6, Offset(l, []int64{1, 2}, nil), "row-major (1,2)")
}

func TestOffsetExhaustive(t *testing.T) {
	// Every valid multi-index matches the explicit sum, including non-zero
	// bases and a negative stride.
	l := Layout{
		{Low: 1, High: 4, Stride: -7},
		{Low: -2, High: 2, Stride: 3},
	}
	var calls []rangeCall
	diag := collectRange(&calls)
	for i := l[0].Low; i < l[0].High; i++ {
		for j := l[1].Low; j < l[1].High; j++ {
			want := i*l[0].Stride + j*l[1].Stride
			assertEqualInt64(t, want, Offset(l, []int64{i, j}, diag), "offset sum")
		}
	}
	if len(calls) != 0 {
		t.Errorf("valid indices produced %d diagnostics", len(calls))
	}
}

func TestOffsetZeroStrideBroadcast(t *testing.T) {
	l := Layout{{Low: 0, High: 100, Stride: 0}, {Low: 0, High: 4, Stride: 1}}
	for i := int64(0); i < 100; i += 17 {
		assertEqualInt64(t, 2, Offset(l, []int64{i, 2}, nil), "broadcast dimension ignores its index")
	}
}

func TestOffsetDiagnosticFirstViolation(t *testing.T) {
	if !rangeChecks {
		t.Skip("range checking compiled out")
	}
	l := RowMajor(3, 4, 5)
	var calls []rangeCall
	// Dimensions 1 and 2 both violate; only the lowest is reported.
	got := Offset(l, []int64{1, 4, 99}, collectRange(&calls))
	if len(calls) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(calls))
	}
	c := calls[0]
	if c.label != "Indexing" || c.dim != 1 || c.low != 0 || c.high != 4 || c.index != 4 {
		t.Errorf("diagnostic named (%q, %d, [%d,%d), %d)", c.label, c.dim, c.low, c.high, c.index)
	}
	// The sum is still computed after the callback returns.
	assertEqualInt64(t, 1*20+4*5+99*1, got, "offset after violation")
}

func TestOffsetDefaultPolicyPanics(t *testing.T) {
	if !rangeChecks {
		t.Skip("range checking compiled out")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic with no diagnostic supplied")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "Indexing") {
			t.Errorf("unexpected panic payload: %v", r)
		}
	}()
	Offset(RowMajor(10), []int64{10}, nil)
}

func TestOffsetScalarLayout(t *testing.T) {
	assertEqualInt64(t, 0, Offset(nil, nil, nil), "rank-0 offset")
}
