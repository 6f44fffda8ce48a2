// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/csr"
)

// edgesOf reaches the Edges iterator of the concrete gonum graph returned by
// BuildGraph; builder.Graph itself does not declare it.
func edgesOf(g builder.Graph) graph.Edges {
	return g.(interface{ Edges() graph.Edges }).Edges()
}

// BuilderSuite exercises the fixture constructors.
type BuilderSuite struct {
	suite.Suite
}

func (s *BuilderSuite) TestPath() {
	g, err := builder.BuildGraph(false, nil, builder.Path(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, g.Nodes().Len())
	require.True(s.T(), g.HasEdgeBetween(0, 1))
	require.True(s.T(), g.HasEdgeBetween(2, 3))
	require.False(s.T(), g.HasEdgeBetween(0, 3))

	w, ok := g.Weight(1, 2)
	require.True(s.T(), ok)
	require.Equal(s.T(), builder.DefaultEdgeWeight, w)
}

func (s *BuilderSuite) TestCycleAndStar() {
	g, err := builder.BuildGraph(false, nil, builder.Cycle(5))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdgeBetween(4, 0))
	for id := int64(0); id < 5; id++ {
		require.Equal(s.T(), 2, g.From(id).Len())
	}

	star, err := builder.BuildGraph(true, nil, builder.Star(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, star.From(0).Len())
	require.Equal(s.T(), 0, star.From(3).Len())
}

func (s *BuilderSuite) TestCompleteDirected() {
	g, err := builder.BuildGraph(true, nil, builder.Complete(4))
	require.NoError(s.T(), err)
	dg, ok := g.(graph.Directed)
	require.True(s.T(), ok)
	for u := int64(0); u < 4; u++ {
		for v := int64(0); v < 4; v++ {
			require.Equal(s.T(), u != v, dg.HasEdgeFromTo(u, v), "%d→%d", u, v)
		}
	}
}

func (s *BuilderSuite) TestValidation() {
	_, err := builder.BuildGraph(false, nil, builder.Path(1))
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(false, nil, builder.Cycle(2))
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(false, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(s.T(), err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(false, nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(s.T(), err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(false, nil, builder.RandomPartition(nil, 0.5, 0.1))
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(false, nil, nil)
	require.ErrorIs(s.T(), err, builder.ErrConstructFailed)
}

func (s *BuilderSuite) TestRandomSparseDeterministic() {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.BuildGraph(false, opts, builder.RandomSparse(30, 0.2))
	require.NoError(s.T(), err)
	b, err := builder.BuildGraph(false, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(s.T(), err)

	require.Equal(s.T(), edgesOf(a).Len(), edgesOf(b).Len())
	for u := int64(0); u < 30; u++ {
		for v := u + 1; v < 30; v++ {
			require.Equal(s.T(), a.HasEdgeBetween(u, v), b.HasEdgeBetween(u, v))
		}
	}

	// p=1 needs no RNG and yields K_n.
	full, err := builder.BuildGraph(false, nil, builder.RandomSparse(6, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 15, edgesOf(full).Len())
}

func (s *BuilderSuite) TestRandomPartitionBlocks() {
	sizes := []int{5, 5}
	g, err := builder.BuildGraph(false, nil, builder.RandomPartition(sizes, 1, 0))
	require.NoError(s.T(), err)

	for u := int64(0); u < 10; u++ {
		for v := u + 1; v < 10; v++ {
			same := builder.Block(sizes, int(u)) == builder.Block(sizes, int(v))
			require.Equal(s.T(), same, g.HasEdgeBetween(u, v), "%d-%d", u, v)
		}
	}
	require.Equal(s.T(), -1, builder.Block(sizes, 10))
	require.Equal(s.T(), 1, builder.Block(sizes, 7))
}

func (s *BuilderSuite) TestWeightFn() {
	g, err := builder.BuildGraph(false,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(2, 3))},
		builder.Path(5))
	require.NoError(s.T(), err)
	for u := int64(0); u < 4; u++ {
		w, ok := g.Weight(u, u+1)
		require.True(s.T(), ok)
		require.GreaterOrEqual(s.T(), w, 2.0)
		require.Less(s.T(), w, 3.0)
	}

	require.Panics(s.T(), func() { builder.WithWeightFn(nil) })
	require.Panics(s.T(), func() { builder.UniformWeightFn(3, 2) })
	require.Panics(s.T(), func() { builder.ExponentialWeightFn(0) })
}

func (s *BuilderSuite) TestIDSchemeRemappedByFromGonum() {
	// Path 40-30-20-10: sparse, descending ids.
	g, err := builder.BuildGraph(false,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) int64 { return int64(10 * (4 - i)) })},
		builder.Path(4))
	require.NoError(s.T(), err)
	require.True(s.T(), g.HasEdgeBetween(40, 30))
	require.True(s.T(), g.HasEdgeBetween(20, 10))
	require.Nil(s.T(), g.Node(0))

	src, ids, err := csr.FromGonum(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{10, 20, 30, 40}, ids)

	m, err := csr.BuildTransition(src, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uint32{0, 1, 3, 5, 6}, m.Indptr)
	require.Equal(s.T(), []uint32{1, 0, 2, 1, 3, 2}, m.Indices)

	require.Panics(s.T(), func() { builder.WithIDScheme(nil) })
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}
