// Package dfs implements depth‑first search traversal, cycle detection,
// reachability and topological sort on a core.Digraph.
//
// Every traversal runs on an explicit work stack over vertex indices rather
// than native recursion, so arbitrarily deep posets cannot overflow the
// goroutine stack, and visitation state is an owned slice indexed like the
// graph itself.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, forward (successors) or backward (predecessors).
//     Supports pre‑order and post‑order hooks, neighbor filtering and
//     full‑forest traversal.
//   - TopologicalSort: linear ordering of a DAG so that every edge u→v has
//     u before v; ErrCycleDetected otherwise.
//   - FindCycle: returns one directed cycle, if any, for error reporting.
//   - Reachable: whether a target can be reached from a source.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Direction: Forward or Backward edge orientation
//   - Option / DFSOptions: functional options
//   - DFSResult: pre‑order, post‑order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - Reachable:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index not in graph
//   - ErrCycleDetected        cycle discovered in DAG operations
//   - hook errors             propagated from OnVisit or OnExit
package dfs
