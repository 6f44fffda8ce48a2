// Command lvwalk generates random walks and corrupted walks from an edge
// list.
//
//	lvwalk walks   --input graph.tsv --output walks.tsv [--weights-output w.tsv]
//	lvwalk corrupt --input graph.tsv --output walks.tsv --similarity-output sim.tsv
//
// Every flag can also be set through the environment as LVWALK_<FLAG>,
// with dashes turned into underscores (LVWALK_WALK_LEN=20).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
