package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/internal/edgelist"
	"github.com/katalvlaran/lvwalk/internal/profile"
)

// graphs holds the matrices built from one edge list.
type graphs struct {
	transition *csr.Matrix
	adjacency  *csr.Matrix
}

// loadGraphs reads p.Input and builds the transition matrix. The adjacency
// is built only when withAdjacency is set.
func loadGraphs(p *profile.Profile, log zerolog.Logger, withAdjacency bool) (*graphs, error) {
	start := time.Now()
	el, err := edgelist.ReadFile(p.Input, p.Directed)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("input", p.Input).
		Int("nodes", el.Order()).
		Bool("directed", p.Directed).
		Dur("elapsed", time.Since(start)).
		Msg("Edge list loaded")

	start = time.Now()
	var g graphs
	if p.MaxEntropy {
		g.transition, err = csr.BuildMaxEntropy(el)
	} else {
		g.transition, err = csr.BuildTransition(el, p.SubSampling)
	}
	if err != nil {
		return nil, errors.Wrap(err, "build transition matrix")
	}
	if withAdjacency {
		if g.adjacency, err = csr.BuildAdjacency(el); err != nil {
			return nil, errors.Wrap(err, "build adjacency")
		}
	}
	log.Info().
		Int("nodes", g.transition.Order()).
		Int("edges", g.transition.Size()).
		Bool("merw", p.MaxEntropy).
		Float64("sub_sampling", p.SubSampling).
		Dur("elapsed", time.Since(start)).
		Msg("Transition matrix built")
	return &g, nil
}
