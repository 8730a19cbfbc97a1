package poset

import (
	"fmt"

	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/dfs"
)

// Reduce removes every edge of the DAG g that is implied by a longer path.
//
// Each edge u→v is removed in turn; if v is no longer reachable
// from u over the current edge set the edge was necessary and is restored.
// The transitive reduction of a DAG is unique, so the processing order
// (sorted edge snapshot) does not change the result.
//
// Complexity: O(E·(V+E)).
func Reduce(g *core.Digraph) error {
	if g == nil {
		return dfs.ErrGraphNil
	}
	for _, e := range g.Edges() {
		if err := g.RemoveEdge(e.From, e.To); err != nil {
			return fmt.Errorf("Reduce: %w", err)
		}
		ok, err := dfs.Reachable(g, e.From, e.To)
		if err != nil {
			return fmt.Errorf("Reduce: %w", err)
		}
		if ok {
			continue
		}
		if err = g.AddEdge(e.From, e.To); err != nil {
			return fmt.Errorf("Reduce: %w", err)
		}
	}

	return nil
}
