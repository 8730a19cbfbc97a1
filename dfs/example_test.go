package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/dfs"
)

// ExampleTopologicalSort orders a small subset lattice so that larger
// configuration sets come first.
func ExampleTopologicalSort() {
	// 0 = root, 1 = A, 2 = B, 3 = C; edges point from superset to subset.
	g := core.NewDigraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [0 1 3 2]
}
