// Copyright 2026 Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array is the public API of the strided indexing engine: generic
// multidimensional array views over owned or borrowed memory, with fully
// configurable layout and optional compiled-away bounds checking.
//
// # Overview
//
// Three layers compose every array:
//   - Buffer: a contiguous byte region, either owned (reference-counted,
//     freed with the last handle) or borrowed (foreign memory, never freed
//     here). Access is identical across the two modes.
//   - Layout: a dope vector — one Dope per dimension carrying the valid
//     index range [Low, High) and a signed element stride. Any base, any
//     stride (negative and zero included), any dimension order.
//   - Views: View[T] and ConstView[T] couple a Buffer with a Layout and
//     resolve multi-indices through one shared offset formula,
//     sum(index[i] * stride[i]).
//
// # Basic Usage
//
//	buf, _ := array.NewOwned(10 * 8)
//	v, _ := array.NewView[float64](buf, array.RowMajor(10))
//	v.Set(3.14, 5)
//	x := v.At(5)
//
// # Deriving Views
//
// Slice, Reshape, Transpose and Reverse return new views sharing the same
// buffer in the same ownership mode:
//
//	m, _ := array.NewView[float64](buf, array.RowMajor(3, 4))
//	t, _ := m.Transpose(1, 0)       // (4, 3), no copy
//	row, _ := m.Slice(0, 1, 2)      // second row, extent 1
//	rev, _ := m.Reverse(1)          // columns traversed backwards
//
// # Fixed-Rank Views
//
// View1 through View4 fix the rank at compile time: At(i, j) on a View2
// cannot be called with the wrong arity, and no runtime rank check runs.
// They are the preferred path for performance-sensitive code and for layers
// built on top of the engine:
//
//	m2, _ := m.Fixed2()
//	x := m2.At(1, 2)
//
// # Bounds Checking
//
// Each index is validated against its dimension's [Low, High). On a
// violation the view's diagnostic callback is invoked with the label, the
// first violated dimension, its bounds, and the offending index; without a
// callback the engine fails fast with a panic. Building with
//
//	go build -tags stridednocheck
//
// removes every range comparison and diagnostic call from the binary.
//
// # Ownership
//
// Views and buffers are handles. Retain copies a handle (owned buffers gain
// a reference, borrowed ones are re-borrowed) and Release drops it; the
// last release of an owned buffer frees its memory. Borrowed memory must
// outlive every view over it — that is the caller's obligation. Element
// access is not synchronized: concurrent writers through views of one
// buffer are the caller's responsibility.
package array
