// Copyright 2026 Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strided-ml/strided/array"
)

func TestPublicSurface(t *testing.T) {
	buf, err := array.NewOwned(10 * 8)
	require.NoError(t, err)

	v, err := array.NewView[float64](buf, array.RowMajor(10))
	require.NoError(t, err)
	defer v.Release()

	v.Set(3.14, 5)
	assert.Equal(t, 3.14, v.At(5))

	s, err := v.Slice(0, 2, 10)
	require.NoError(t, err)
	defer s.Release()
	assert.Equal(t, v.At(2), s.At(0))

	r, err := v.Reverse(0)
	require.NoError(t, err)
	defer r.Release()
	assert.Equal(t, v.At(9), r.At(0))
}

func TestPublicFixedRank(t *testing.T) {
	buf, err := array.NewOwned(12 * 4)
	require.NoError(t, err)
	m, err := array.NewView[int32](buf, array.RowMajor(3, 4))
	require.NoError(t, err)
	defer m.Release()

	f, err := m.Fixed2()
	require.NoError(t, err)
	defer f.Release()
	f.Set(42, 1, 2)
	assert.Equal(t, int32(42), m.At(1, 2))
}

func TestPublicKinds(t *testing.T) {
	assert.Equal(t, array.Float64, array.KindOf[float64]())
	assert.Equal(t, int64(8), array.Float64.Size())

	k, ok := array.KindByName("int32")
	require.True(t, ok)
	assert.Equal(t, array.Int32, k)
	_, ok = array.KindByName("complex128")
	assert.False(t, ok)
}

func TestPublicErrors(t *testing.T) {
	buf, err := array.NewOwned(8)
	require.NoError(t, err)
	_, err = array.NewView[float64](buf, array.RowMajor(2))
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = array.NewOwned(-5)
	assert.ErrorIs(t, err, array.ErrAllocation)
}

func TestPublicOffsetEngine(t *testing.T) {
	l := array.RowMajor(3, 4)
	assert.Equal(t, int64(6), array.Offset(l, []int64{1, 2}, nil))
}
