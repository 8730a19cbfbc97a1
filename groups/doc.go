// Package groups solves the optimal cardinality-group partition of the tree
// children of one feature.
//
// Given n children and a list of assignments (n-bit masks of the children
// enabled together in some configuration), the package finds the partition
// of the children into groups that minimizes the product of the groups'
// estimated configuration counts. Each group's bounds [min,max] are the
// observed minimum and maximum number of its members enabled together.
//
// Algorithm (Optimal):
//
//  1. For every subset mask S: bounds via Cardinality, cost via Cost
//     (weighted subset count summed over k ∈ [min,max]).
//  2. dp[∅]=1; dp[M] = min over non-empty G ⊆ M that contain the lowest set
//     bit of M of dp[M\G]·cost(G). Sub-masks are enumerated from M downward
//     with G=(G-1)&M; the first minimum wins.
//  3. Reconstruct by repeatedly subtracting the recorded block from the
//     full mask.
//
// Complexity: O(3ⁿ) time, O(2ⁿ) memory. Solve caps the exact search at
// MaxExactChildren children and falls back to one flat [0,n] group above.
//
// Group kinds (KindOf), first match wins:
//
//	[k,k] mandatory   [0,k] optional   [1,k] or   [1,1] alternative   else [m..n]
//
// Errors:
//
//   - ErrNoAssignments    no assignment masks supplied
//   - ErrTooManyChildren  n exceeds the mask width
//   - ErrInvalidBounds    bounds outside 0 ≤ min ≤ max ≤ size
package groups
