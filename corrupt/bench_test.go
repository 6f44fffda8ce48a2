package corrupt_test

import (
	"testing"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/csr"
	"github.com/katalvlaran/lvwalk/walk"
)

func BenchmarkCorrupt(b *testing.B) {
	g, err := builder.BuildGraph(false, []builder.BuilderOption{builder.WithSeed(1)},
		builder.Cycle(2000), builder.RandomSparse(2000, 0.003))
	if err != nil {
		b.Fatal(err)
	}
	src, _, err := csr.FromGonum(g)
	if err != nil {
		b.Fatal(err)
	}
	tm, err := csr.BuildTransition(src, 0)
	if err != nil {
		b.Fatal(err)
	}
	adj, err := csr.BuildAdjacency(src)
	if err != nil {
		b.Fatal(err)
	}
	w, err := walk.RandomWalks(tm, nil, walk.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	table, err := corrupt.NewDegreeTable(adj, corrupt.DefaultExponent, corrupt.DefaultTableSize)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := corrupt.CorruptCopy(w, adj, table, corrupt.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
