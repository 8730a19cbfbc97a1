// Package dfs provides a depth-first search traversal on core.Digraph,
// driven by an explicit work stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/fcafm/core"
)

// frame is one entry of the explicit work stack: the vertex being expanded
// and the cursor into its ordered neighbor list.
type frame struct {
	v    int
	nbrs []int
	next int
}

// DFS performs a depth-first traversal on graph g starting from vertex start.
// It returns a DFSResult or an error on failure.
//
// Behavior:
//   - Validates inputs (g non-nil, start exists).
//   - Neighbors are expanded in ascending index order, so the traversal
//     is fully deterministic.
//   - Supports pre-order (OnVisit) and post-order (OnExit) hooks.
//   - FilterNeighbor may skip edges; skipped edges are counted.
//   - FullTraversal restarts from every unvisited vertex in ascending order.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Digraph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("DFS: %w (%d)", ErrStartVertexNotFound, start)
	}

	// 3. Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 4. Prepare result
	n := g.Order()
	res := &DFSResult{
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	w := &walker{g: g, opts: &o, res: res}

	// 5. Traverse from start
	if err := w.run(start); err != nil {
		return nil, err
	}

	// 6. Optionally cover the remaining forest
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Visited[v] {
				continue
			}
			if err := w.run(v); err != nil {
				return nil, err
			}
		}
	}

	res.SkippedNeighbors = o.SkippedNeighbors

	return res, nil
}

// walker holds traversal state shared between restarts.
type walker struct {
	g    *core.Digraph
	opts *DFSOptions
	res  *DFSResult
}

// run explores every vertex reachable from root that has not been visited.
func (w *walker) run(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}
	nbrs, err := neighbors(w.g, root, w.opts.Direction)
	if err != nil {
		return err
	}
	stack := []frame{{v: root, nbrs: nbrs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 1. All neighbors explored: finish the vertex
		if top.next >= len(top.nbrs) {
			if w.opts.OnExit != nil {
				if err = w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("DFS: OnExit hook for vertex %d: %w", top.v, err)
				}
			}
			w.res.Order = append(w.res.Order, top.v)
			stack = stack[:len(stack)-1]
			continue
		}

		// 2. Advance the cursor
		cur, nxt := top.v, top.nbrs[top.next]
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(cur, nxt) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nxt] {
			continue
		}

		// 3. Descend
		if err = w.discover(nxt, cur, w.res.Depth[cur]+1); err != nil {
			return err
		}
		if nbrs, err = neighbors(w.g, nxt, w.opts.Direction); err != nil {
			return err
		}
		stack = append(stack, frame{v: nxt, nbrs: nbrs})
	}

	return nil
}

// discover marks v visited and fires the pre-order hook.
func (w *walker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Parent[v] = parent
	w.res.Depth[v] = depth
	w.res.Preorder = append(w.res.Preorder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("DFS: OnVisit hook for vertex %d: %w", v, err)
		}
	}

	return nil
}

// neighbors returns the sorted adjacency of v in direction d.
func neighbors(g *core.Digraph, v int, d Direction) ([]int, error) {
	if d == Backward {
		return g.Predecessors(v)
	}

	return g.Successors(v)
}
