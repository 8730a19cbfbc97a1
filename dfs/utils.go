package dfs

import "github.com/katalvlaran/fcafm/core"

// Reachable reports whether to can be reached from from by following
// directed edges. A vertex always reaches itself.
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable(g *core.Digraph, from, to int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false, core.ErrVertexNotFound
	}
	if from == to {
		return true, nil
	}

	seen := make([]bool, g.Order())
	seen[from] = true
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		succ, err := g.Successors(v)
		if err != nil {
			return false, err
		}
		for _, w := range succ {
			if w == to {
				return true, nil
			}
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return false, nil
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
