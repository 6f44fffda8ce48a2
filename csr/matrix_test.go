// SPDX-License-Identifier: MIT
package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/csr"
)

// pathMatrix returns the cumulative transition matrix of the undirected
// path 0-1-2-3 with equal weights, written out by hand.
func pathMatrix(t *testing.T) *csr.Matrix {
	t.Helper()
	m, err := csr.New(
		[]uint32{0, 1, 3, 5, 6},
		[]uint32{1, 0, 2, 1, 3, 2},
		[]float32{1, 0.5, 1, 0.5, 1, 1},
	)
	require.NoError(t, err)
	return m
}

func TestNew_ShapeErrors(t *testing.T) {
	cases := []struct {
		name    string
		indptr  []uint32
		indices []uint32
		data    []float32
		want    error
	}{
		{"empty indptr", nil, nil, nil, csr.ErrBadShape},
		{"indptr[0] not zero", []uint32{1, 1}, []uint32{0}, []float32{1}, csr.ErrBadShape},
		{"data length mismatch", []uint32{0, 1}, []uint32{0}, []float32{}, csr.ErrBadShape},
		{"indptr[n] != m", []uint32{0, 2}, []uint32{0}, []float32{1}, csr.ErrBadShape},
		{"decreasing indptr", []uint32{0, 2, 1, 2}, []uint32{0, 1}, []float32{0.5, 1}, csr.ErrBadShape},
		{"index out of range", []uint32{0, 1}, []uint32{3}, []float32{1}, csr.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(tc.indptr, tc.indices, tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMatrix_Accessors(t *testing.T) {
	m := pathMatrix(t)

	require.Equal(t, 4, m.Order())
	require.Equal(t, 6, m.Size())
	require.Equal(t, 1, m.Degree(0))
	require.Equal(t, 2, m.Degree(1))
	require.Equal(t, []uint32{0, 2}, m.Neighbors(1))

	idx, cdf := m.Row(2)
	require.Equal(t, []uint32{1, 3}, idx)
	require.Equal(t, []float32{0.5, 1}, cdf)

	require.True(t, m.HasEdge(1, 2))
	require.True(t, m.HasEdge(2, 1))
	require.False(t, m.HasEdge(0, 3))

	require.InDelta(t, 0.5, m.Weight(1, m.Indptr[1]), 1e-9)
	require.InDelta(t, 0.5, m.Weight(2, m.Indptr[1]), 1e-9)
	require.InDelta(t, 1.0, m.Weight(0, m.Indptr[0]), 1e-9)
}

func TestMatrix_WithOriginal(t *testing.T) {
	m := pathMatrix(t)

	_, err := m.WithOriginal([]float32{1, 2})
	require.ErrorIs(t, err, csr.ErrBadShape)

	got, err := m.WithOriginal([]float32{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Len(t, got.Original, 6)
	require.NoError(t, got.Validate())

	var nilMatrix *csr.Matrix
	_, err = nilMatrix.WithOriginal(nil)
	require.ErrorIs(t, err, csr.ErrNilMatrix)
}

func TestMatrix_CheckStochastic(t *testing.T) {
	require.NoError(t, pathMatrix(t).CheckStochastic(1e-4))

	drift, err := csr.New([]uint32{0, 2}, []uint32{0, 0}, []float32{0.4, 0.9})
	require.NoError(t, err)
	require.ErrorIs(t, drift.CheckStochastic(1e-4), csr.ErrNotStochastic)

	decreasing, err := csr.New([]uint32{0, 2}, []uint32{0, 0}, []float32{0.8, 0.6})
	require.NoError(t, err)
	require.ErrorIs(t, decreasing.CheckStochastic(1e-4), csr.ErrNotStochastic)

	// Dead-end rows are skipped.
	dead, err := csr.New([]uint32{0, 0, 1}, []uint32{0}, []float32{1})
	require.NoError(t, err)
	require.NoError(t, dead.CheckStochastic(1e-4))
}
