// Package hierarchy selects the tree constraints of an AC-poset: exactly one
// outgoing "parent" edge per non-maximum concept, so that the chosen edges
// form a spanning in-arborescence rooted at the maximum. The remaining
// poset edges become cross-tree implications.
//
// Selectors:
//
//   - MaxDepth (default): depth(max)=0, depth(v)=1+max depth(successor);
//     the parent is the deepest successor. Ties go to the successor with the
//     lexicographically smallest canonical feature name, then the smallest
//     index.
//   - FirstDiscovered: iterative DFS from the maximum over incoming edges;
//     the parent is the vertex that discovered the node first.
//   - Random: a uniformly random successor, reproducible from Seed.
//
// Every selector returns a Tree that passes Tree.Validate.
//
// Errors:
//
//   - ErrNilPoset         poset argument is nil
//   - ErrInvalidTree      a parent assignment breaks the contract
//   - ErrUnknownSelector  ByName received an unknown policy name
package hierarchy
