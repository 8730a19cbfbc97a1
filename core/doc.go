// Package core provides the directed-graph arena shared by every stage of
// feature-model synthesis.
//
// A Digraph G = (V,E) stores its vertices as dense integer indices 0..n-1 and
// its edges as ordered index pairs. Callers keep their payload (concepts,
// features, ...) in a parallel slice addressed by the same index, so the graph
// never owns pointers back into user data:
//
//	concepts := []Concept{...}      // payload, index i
//	g := core.NewDigraph(len(concepts))
//	_ = g.AddEdge(i, j)             // i → j
//
// Guarantees:
//
//   - Deterministic iteration: Successors, Predecessors, Edges, Sources and
//     Sinks all return results sorted by index.
//   - No parallel edges: a second AddEdge(u,v) returns ErrMultiEdgeNotAllowed.
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - A single sync.RWMutex guards the adjacency sets, so a frozen graph may be
//     read from several goroutines.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                      // O(1)
//	HasVertex(v int) bool                // O(1)
//	Order() int                          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int) error          // O(1)
//	RemoveEdge(from, to int) error       // O(1)
//	HasEdge(from, to int) bool           // O(1)
//
//	// Query
//	Successors(v int) ([]int, error)     // O(d·log d)
//	Predecessors(v int) ([]int, error)   // O(d·log d)
//	Edges() []Edge                       // O(E·log E)
//	Degree(v int) (in, out int, err error)
//	Sources() []int / Sinks() []int      // O(V)
//
//	// Cloning
//	Clone() *Digraph                     // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – index outside [0, Order())
//	ErrEdgeNotFound        – RemoveEdge on a missing edge
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge
package core
