// Package core defines the Digraph and Edge types, graph options and sentinel
// errors.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex index does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed connection From → To between two vertex indices.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int
}

// GraphOption configures behavior of a Digraph before creation.
type GraphOption func(g *Digraph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Digraph) { g.allowLoops = true }
}

// Digraph is an index-addressed directed graph.
//
// out[v] holds the successors of v and in[v] its predecessors; both are kept
// in sync by every mutation. edgeCount mirrors the number of stored edges.
type Digraph struct {
	mu sync.RWMutex // guards out, in and edgeCount

	allowLoops bool // allow self-loops

	out       []map[int]struct{} // v → successors
	in        []map[int]struct{} // v → predecessors
	edgeCount int
}

// NewDigraph creates a Digraph with n isolated vertices 0..n-1.
// By default loops are rejected.
// Complexity: O(n)
func NewDigraph(n int, opts ...GraphOption) *Digraph {
	if n < 0 {
		n = 0
	}
	g := &Digraph{
		out: make([]map[int]struct{}, n),
		in:  make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.out[v] = make(map[int]struct{})
		g.in[v] = make(map[int]struct{})
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
