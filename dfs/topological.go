// Package dfs implements topological sorting of directed acyclic graphs
// using an iterative three-colour depth-first search.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/fcafm/core"
)

// TopologicalSort returns a linear ordering of vertices such that for every
// edge u→v, u appears before v. Roots are tried in ascending index order and
// successors are expanded in ascending order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected (wrapped with the offending edge) if g is not a DAG.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Digraph) ([]int, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	state := make([]int, n)
	post := make([]int, 0, n)

	// 2. Iterative DFS from each white vertex
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		nbrs, err := g.Successors(root)
		if err != nil {
			return nil, err
		}
		state[root] = Gray
		stack := []frame{{v: root, nbrs: nbrs}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				// 2a. Finished: record in post-order
				state[top.v] = Black
				post = append(post, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			u, v := top.v, top.nbrs[top.next]
			top.next++

			switch state[v] {
			case Gray:
				// 2b. Back edge closes a cycle
				return nil, fmt.Errorf("TopologicalSort: edge %d->%d: %w", u, v, ErrCycleDetected)
			case White:
				if nbrs, err = g.Successors(v); err != nil {
					return nil, err
				}
				state[v] = Gray
				stack = append(stack, frame{v: v, nbrs: nbrs})
			}
		}
	}

	// 3. Reverse post-order is a topological order
	reverseInts(post)

	return post, nil
}
