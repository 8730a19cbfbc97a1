package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fcafm/core"
)

// ExampleDigraph builds a small diamond and prints its sorted edge list.
//
//	  3
//	 / \
//	1   2
//	 \ /
//	  0
func ExampleDigraph() {
	g := core.NewDigraph(4)
	for _, e := range []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}} {
		_ = g.AddEdge(e.From, e.To)
	}

	var parts []string
	for _, e := range g.Edges() {
		parts = append(parts, fmt.Sprintf("%d->%d", e.From, e.To))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println("sinks:", g.Sinks())

	// Output:
	// 0->1 0->2 1->3 2->3
	// sinks: [3]
}
