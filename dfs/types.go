// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, direction, neighbor filtering and
// full-graph (forest) traversal.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the work stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Digraph is passed to DFS,
	// TopologicalSort, FindCycle or Reachable.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex index
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Direction selects which edges a traversal follows.
type Direction int

const (
	// Forward follows edges u→v from u to v (successors).
	Forward Direction = iota
	// Backward follows edges u→v from v to u (predecessors).
	Backward
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Direction selects successors (Forward, default) or predecessors (Backward).
	Direction Direction

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// FilterNeighbor, if non-nil, is called for each edge cur→next before
	// descending. Return false to skip next.
	FilterNeighbor func(cur, next int) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending index order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Forward direction
//   - No pre-/post-order hooks
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{Direction: Forward}
}

// WithDirection returns an Option that sets the traversal direction.
func WithDirection(d Direction) Option {
	return func(o *DFSOptions) {
		o.Direction = d
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithFilterNeighbor returns an Option that filters traversed edges.
func WithFilterNeighbor(fn func(cur, next int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// All per-vertex slices are indexed by vertex.
type DFSResult struct {
	// Preorder records vertices in discovery order.
	Preorder []int

	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth of each visited vertex, -1 if unvisited.
	Depth []int

	// Parent is the vertex from which each vertex was first discovered;
	// -1 for roots of the DFS forest and unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
