// Package walk generates random walks over a csr.Matrix.
//
// Three generators share one traversal loop:
//
//   - RandomWalks with P=Q=1 and Alpha=0: plain first-order walks.
//   - RandomWalks with Alpha>0: walks with restart to the start node.
//   - RandomWalks with P≠1 or Q≠1: second-order node2vec walks.
//   - RandomWalksWithWeights: any of the above, also recording the raw
//     weight of every traversed edge.
//
// Output is a dense row-major matrix of shape (len(start)*NWalks, WalkLen).
// Row i starts at start[i mod len(start)]. A walk that reaches a node with
// no out-edges holds there for the rest of the row.
//
// Rows are produced in parallel. Each fixed-size block of rows draws from
// its own PCG stream derived from Options.Seed, so the result is a pure
// function of (matrix, start, options) regardless of Options.Workers.
// With a shared seed, P=Q=1 and Alpha=0 the restart, node2vec and weighted
// generators consume exactly the same draws as the plain one and return
// identical walks.
package walk
