// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Digraph: flags, vertices and edges.
// Mutating the clone never affects the source, which is what the transitive
// reduction relies on when it needs the pre-reduction edge set.
//
// Complexity: O(V + E)
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.out)
	clone := NewDigraph(n)
	clone.allowLoops = g.allowLoops
	for from := 0; from < n; from++ {
		for to := range g.out[from] {
			clone.out[from][to] = struct{}{}
			clone.in[to][from] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
