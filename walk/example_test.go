package walk_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/walk"
)

// ExampleRandomWalks walks a directed chain 0→1→2 where node 2 is a dead end.
func ExampleRandomWalks() {
	el := csr.NewEdgeList(3, true)
	_ = el.AddEdge(0, 1, 1)
	_ = el.AddEdge(1, 2, 1)
	m, _ := csr.BuildTransition(el, 0)

	opts := walk.DefaultOptions()
	opts.NWalks, opts.WalkLen = 1, 4
	w, _ := walk.RandomWalks(m, nil, opts)
	for i := 0; i < w.Rows; i++ {
		fmt.Println(w.Row(i))
	}
	// Output:
	// [0 1 2 2]
	// [1 2 2 2]
	// [2 2 2 2]
}
