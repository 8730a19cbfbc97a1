// SPDX-License-Identifier: MIT

// Package dfs: directed cycle discovery for diagnostics.
package dfs

import "github.com/katalvlaran/fcafm/core"

// FindCycle returns one directed cycle of g as a vertex sequence
// [v0, v1, ..., vk] where vk→v0 closes the cycle, and true. When g is
// acyclic it returns nil, false.
//
// The search order matches TopologicalSort, so the reported cycle is the
// first back edge TopologicalSort would trip on.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Digraph) ([]int, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	n := g.Order()
	state := make([]int, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		nbrs, err := g.Successors(root)
		if err != nil {
			return nil, false, err
		}
		state[root] = Gray
		stack := []frame{{v: root, nbrs: nbrs}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.nbrs[top.next]
			top.next++

			switch state[v] {
			case Gray:
				// the gray frames from v to the top form the cycle
				var cycle []int
				for i := range stack {
					if stack[i].v == v {
						for _, f := range stack[i:] {
							cycle = append(cycle, f.v)
						}
						break
					}
				}
				return cycle, true, nil
			case White:
				if nbrs, err = g.Successors(v); err != nil {
					return nil, false, err
				}
				state[v] = Gray
				stack = append(stack, frame{v: v, nbrs: nbrs})
			}
		}
	}

	return nil, false, nil
}
