// Package core: Digraph method implementations.
//
// Adjacency is stored twice (out/in) as index sets so that both successor and
// predecessor queries, as well as edge insertion and removal, run in constant
// time. Every query that returns several indices sorts them first.

package core

import "sort"

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Digraph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.out = append(g.out, make(map[int]struct{}))
	g.in = append(g.in, make(map[int]struct{}))

	return len(g.out) - 1
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Digraph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Digraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Digraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge inserts the directed edge from → to.
// Returns ErrVertexNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Digraph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Both endpoints must exist
	if !g.hasVertex(from) || !g.hasVertex(to) {
		return ErrVertexNotFound
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 3) Parallel edges are never stored
	if _, exists := g.out[from][to]; exists {
		return ErrMultiEdgeNotAllowed
	}
	// 4) Insert into both directions of the adjacency
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from → to.
// Returns ErrVertexNotFound or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Digraph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return ErrVertexNotFound
	}
	if _, exists := g.out[from][to]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from → to exists.
// Complexity: O(1).
func (g *Digraph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return false
	}
	_, exists := g.out[from][to]

	return exists
}

// Successors returns the heads of all edges leaving v, sorted ascending.
// Returns ErrVertexNotFound for an invalid index.
// Complexity: O(d·log d).
func (g *Digraph) Successors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.out[v]), nil
}

// Predecessors returns the tails of all edges entering v, sorted ascending.
// Returns ErrVertexNotFound for an invalid index.
// Complexity: O(d·log d).
func (g *Digraph) Predecessors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.in[v]), nil
}

// Degree returns the in- and out-degree of v.
// Complexity: O(1).
func (g *Digraph) Degree(v int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.in[v]), len(g.out[v]), nil
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E·log E).
func (g *Digraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for from := range g.out {
		for to := range g.out[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Sources returns all vertices without incoming edges, sorted ascending.
// Complexity: O(V).
func (g *Digraph) Sources() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var res []int
	for v := range g.in {
		if len(g.in[v]) == 0 {
			res = append(res, v)
		}
	}

	return res
}

// Sinks returns all vertices without outgoing edges, sorted ascending.
// Complexity: O(V).
func (g *Digraph) Sinks() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var res []int
	for v := range g.out {
		if len(g.out[v]) == 0 {
			res = append(res, v)
		}
	}

	return res
}

// hasVertex is the lock-free bounds check; callers hold g.mu.
func (g *Digraph) hasVertex(v int) bool {
	return v >= 0 && v < len(g.out)
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
