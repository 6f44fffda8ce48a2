// Package lvwalk generates random-walk training data from large sparse
// graphs: uniform, restart and node2vec walks over a cumulative CSR
// transition matrix, plus corrupted (negative-sampled) walks labelled with
// a per-transition similarity matrix.
//
// Packages:
//
//	csr/      - CSR transition matrix, inverse-CDF sampling, builders
//	            (sub-sampled, unweighted adjacency, maximal-entropy)
//	walk/     - parallel walk generators with per-block RNG streams
//	corrupt/  - negative-sampling tables and the corruption engine
//	builder/  - deterministic fixture graphs on gonum
//	cmd/lvwalk - command-line front end
//
// Quick example (path 0-1-2, walks of length 4 from every node):
//
//	el := csr.NewEdgeList(3, false)
//	_ = el.AddEdge(0, 1, 1)
//	_ = el.AddEdge(1, 2, 1)
//	m, _ := csr.BuildTransition(el, 0)
//	opts := walk.DefaultOptions()
//	opts.WalkLen = 4
//	w, _ := walk.RandomWalks(m, nil, opts)
//
// Every call is a pure function of its inputs and Options.Seed; results do
// not depend on the number of worker goroutines.
package lvwalk
