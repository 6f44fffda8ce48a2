// SPDX-License-Identifier: MIT
package corrupt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/walk"
)

// CorruptSuite exercises Corrupt on walks generated over fixture graphs.
type CorruptSuite struct {
	suite.Suite
}

// fixture returns transition and adjacency matrices of an undirected
// builder graph.
func (s *CorruptSuite) fixture(bopts []builder.BuilderOption, cons ...builder.Constructor) (*csr.Matrix, *csr.Matrix) {
	return s.fixtureOf(false, bopts, cons...)
}

func (s *CorruptSuite) fixtureOf(directed bool, bopts []builder.BuilderOption, cons ...builder.Constructor) (*csr.Matrix, *csr.Matrix) {
	g, err := builder.BuildGraph(directed, bopts, cons...)
	s.Require().NoError(err)
	src, _, err := csr.FromGonum(g)
	s.Require().NoError(err)
	tm, err := csr.BuildTransition(src, 0)
	s.Require().NoError(err)
	adj, err := csr.BuildAdjacency(src)
	s.Require().NoError(err)
	return tm, adj
}

func (s *CorruptSuite) walks(tm *csr.Matrix, nWalks, walkLen int) *walk.Matrix {
	o := walk.DefaultOptions()
	o.NWalks, o.WalkLen, o.Seed = nWalks, walkLen, 11
	w, err := walk.RandomWalks(tm, nil, o)
	s.Require().NoError(err)
	return w
}

// requireLabelsMatch checks every label against the adjacency.
func (s *CorruptSuite) requireLabelsMatch(adj *csr.Matrix, w *walk.Matrix, sim *corrupt.Similarity) {
	s.Require().Equal(w.Rows, sim.Rows)
	s.Require().Equal(w.Cols-1, sim.Cols)
	for x := 0; x < w.Rows; x++ {
		for k := 0; k < sim.Cols; k++ {
			want := uint8(0)
			if adj.HasEdge(w.At(x, k), w.At(x, k+1)) {
				want = 1
			}
			s.Require().Equal(want, sim.At(x, k), "row %d label %d: %v", x, k, w.Row(x))
		}
	}
}

func (s *CorruptSuite) TestCardinality() {
	tm, adj := s.fixture(nil, builder.Cycle(1000))
	w := s.walks(tm, 5, 20)
	s.Require().Equal(5000, w.Rows)

	opts := corrupt.Options{Rate: 0.01, Seed: 3}
	out, sim, err := corrupt.CorruptCopy(w, adj, corrupt.Uniform(1000), opts)
	s.Require().NoError(err)

	want := corrupt.NumCorruptions(w.Rows, w.Cols, opts.Rate)
	s.Require().Equal(1000, want)

	changed, zeros := 0, 0
	for i := range w.Data {
		if w.Data[i] != out.Data[i] {
			changed++
		}
	}
	for _, l := range sim.Data {
		if l == 0 {
			zeros++
		}
	}
	s.Require().InDelta(want, changed, 0.05*float64(want))
	s.Require().Positive(zeros)
	for x := 0; x < w.Rows; x++ {
		s.Require().Equal(w.At(x, 0), out.At(x, 0), "column 0 is never corrupted")
	}
}

func (s *CorruptSuite) TestLabelsMatchAdjacency() {
	tm, adj := s.fixture([]builder.BuilderOption{builder.WithSeed(9)},
		builder.Cycle(200), builder.RandomSparse(200, 0.03))
	w := s.walks(tm, 4, 12)

	table, err := corrupt.NewDegreeTable(adj, corrupt.DefaultExponent, 10_000)
	s.Require().NoError(err)
	sim, err := corrupt.Corrupt(w, adj, table, corrupt.Options{Rate: 0.3, Seed: 5})
	s.Require().NoError(err)
	s.requireLabelsMatch(adj, w, sim)
}

func (s *CorruptSuite) TestLastColumnOnly() {
	tm, adj := s.fixture(nil, builder.Cycle(30))
	w := s.walks(tm, 20, 2)

	sim, err := corrupt.Corrupt(w, adj, corrupt.Uniform(30), corrupt.Options{Rate: 0.5, Seed: 2})
	s.Require().NoError(err)
	s.Require().Equal(1, sim.Cols)
	s.requireLabelsMatch(adj, w, sim)
}

func (s *CorruptSuite) TestInteriorLabelUsesNextNode() {
	// Path 0-1-2 and walks [0 1 0]; every replacement is node 2.
	el := csr.NewEdgeList(3, false)
	s.Require().NoError(el.AddEdge(0, 1, 1))
	s.Require().NoError(el.AddEdge(1, 2, 1))
	adj, err := csr.BuildAdjacency(el)
	s.Require().NoError(err)

	const rows = 200
	w := walk.NewMatrix(rows, 3)
	for x := 0; x < rows; x++ {
		copy(w.Row(x), []uint32{0, 1, 0})
	}

	sim, err := corrupt.Corrupt(w, adj, corrupt.Table{2}, corrupt.Options{Rate: 1, Seed: 8})
	s.Require().NoError(err)
	s.requireLabelsMatch(adj, w, sim)

	// [0 2 0]: 2 is adjacent to neither neighbour, including the next one.
	seen := 0
	for x := 0; x < rows; x++ {
		if w.At(x, 1) == 2 && w.At(x, 2) == 0 {
			seen++
			s.Require().Equal([]uint8{0, 0}, sim.Row(x))
		}
	}
	s.Require().Positive(seen)
}

func (s *CorruptSuite) TestDirectedLabelsFollowWalkDirection() {
	// 0→1→2: the walk [0 1] is a real edge even though 0 ∉ N(1).
	el := csr.NewEdgeList(3, true)
	s.Require().NoError(el.AddEdge(0, 1, 1))
	s.Require().NoError(el.AddEdge(1, 2, 1))
	adj, err := csr.BuildAdjacency(el)
	s.Require().NoError(err)

	w := walk.NewMatrix(1, 2)
	copy(w.Row(0), []uint32{0, 1})
	sim, err := corrupt.Corrupt(w, adj, corrupt.Table{1}, corrupt.Options{Rate: 0.5})
	s.Require().NoError(err)
	s.Require().Equal([]uint32{0, 1}, w.Row(0))
	s.Require().Equal([]uint8{1}, sim.Row(0))

	// [0 1 2] with the middle replaced by 2: 0→2 is missing, 2→2 as well.
	w = walk.NewMatrix(1, 3)
	copy(w.Row(0), []uint32{0, 1, 2})
	sim, err = corrupt.Corrupt(w, adj, corrupt.Table{2}, corrupt.Options{Rate: 1, Seed: 4})
	s.Require().NoError(err)
	s.requireLabelsMatch(adj, w, sim)
}

func (s *CorruptSuite) TestDirectedLabelsMatchAdjacency() {
	tm, adj := s.fixtureOf(true, []builder.BuilderOption{builder.WithSeed(12)},
		builder.Cycle(150), builder.RandomSparse(150, 0.04))
	w := s.walks(tm, 4, 10)

	sim, err := corrupt.Corrupt(w, adj, corrupt.Uniform(150), corrupt.Options{Rate: 0.3, Seed: 6})
	s.Require().NoError(err)
	s.requireLabelsMatch(adj, w, sim)
}

func (s *CorruptSuite) TestDeterministicAcrossWorkers() {
	tm, adj := s.fixture([]builder.BuilderOption{builder.WithSeed(4)},
		builder.Cycle(300), builder.RandomSparse(300, 0.02))
	w := s.walks(tm, 10, 10)
	table, err := corrupt.NewDegreeTable(adj, corrupt.DefaultExponent, 5000)
	s.Require().NoError(err)

	a, simA, err := corrupt.CorruptCopy(w, adj, table, corrupt.Options{Rate: 0.2, Seed: 1, Workers: 1})
	s.Require().NoError(err)
	b, simB, err := corrupt.CorruptCopy(w, adj, table, corrupt.Options{Rate: 0.2, Seed: 1, Workers: 6})
	s.Require().NoError(err)
	s.Require().Equal(a.Data, b.Data)
	s.Require().Equal(simA.Data, simB.Data)
}

func (s *CorruptSuite) TestZeroRate() {
	tm, adj := s.fixture(nil, builder.Path(5))
	w := s.walks(tm, 2, 4)
	before := w.Clone()

	sim, err := corrupt.Corrupt(w, adj, corrupt.Uniform(5), corrupt.Options{})
	s.Require().NoError(err)
	s.Require().Equal(before.Data, w.Data)
	for _, l := range sim.Data {
		s.Require().Equal(uint8(1), l)
	}
}

func (s *CorruptSuite) TestErrors() {
	tm, adj := s.fixture(nil, builder.Path(4))
	w := s.walks(tm, 1, 3)
	ok := corrupt.Options{Rate: 0.1}

	for _, rate := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := corrupt.Corrupt(w, adj, corrupt.Uniform(4), corrupt.Options{Rate: rate})
		s.Require().ErrorIs(err, corrupt.ErrInvalidRate)
	}

	_, err := corrupt.Corrupt(nil, adj, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, corrupt.ErrNilWalks)

	_, err = corrupt.Corrupt(&walk.Matrix{Rows: 2, Cols: 2, Data: []uint32{0}}, adj, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, corrupt.ErrBadWalkShape)

	_, err = corrupt.Corrupt(walk.NewMatrix(3, 1), adj, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, corrupt.ErrWalkTooShort)

	_, err = corrupt.Corrupt(w, nil, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, csr.ErrNilMatrix)

	_, err = corrupt.Corrupt(w, adj, nil, ok)
	s.Require().ErrorIs(err, corrupt.ErrEmptySampler)

	_, err = corrupt.Corrupt(w, adj, corrupt.Table{}, ok)
	s.Require().ErrorIs(err, corrupt.ErrEmptySampler)

	_, err = corrupt.Corrupt(w, adj, corrupt.Table{1, 9}, ok)
	s.Require().ErrorIs(err, corrupt.ErrNodeOutOfRange)

	bad := w.Clone()
	bad.Set(0, 2, 17)
	_, err = corrupt.Corrupt(bad, adj, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, corrupt.ErrNodeOutOfRange)

	_, _, err = corrupt.CorruptCopy(nil, adj, corrupt.Uniform(4), ok)
	s.Require().ErrorIs(err, corrupt.ErrNilWalks)
}

func TestCorruptSuite(t *testing.T) {
	suite.Run(t, new(CorruptSuite))
}

func TestNumCorruptions(t *testing.T) {
	require.Equal(t, 1000, corrupt.NumCorruptions(5000, 20, 0.01))
	require.Equal(t, 0, corrupt.NumCorruptions(3, 3, 0.1))
	require.Equal(t, 9, corrupt.NumCorruptions(3, 3, 1))
}
