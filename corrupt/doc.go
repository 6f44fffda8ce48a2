// Package corrupt produces negative samples from a walk matrix.
//
// Corrupt replaces a fraction of the walk cells with nodes drawn from a
// negative-sampling Sampler and returns a Similarity matrix whose cell
// (x,k) is 1 when walk[x][k] → walk[x][k+1] is an edge of the original
// graph and 0 otherwise. Labels start at 1; only the labels adjacent to a
// replaced cell are recomputed.
//
// Corruptions are drawn in parallel from per-block RNG streams, grouped by
// walk row and then applied row by row in draw order, so the result depends
// only on (walks, adjacency, sampler, options) and never on scheduling.
package corrupt
