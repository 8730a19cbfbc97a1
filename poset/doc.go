// Package poset extracts Formal Concept Analysis attribute-concepts from a
// configuration.Set and arranges them into the reduced AC-poset.
//
// What:
//
//   - Extract: groups features enabled by exactly the same configurations
//     into one Concept; concepts enabled nowhere are dropped and their
//     features reported as unused.
//   - Build: adds an edge u→v for every pair with configurations(u) ⊆
//     configurations(v), deduplicates configuration attribution, verifies
//     acyclicity and a unique maximum, then calls Reduce.
//   - Reduce: transitive reduction by removing each edge in turn and
//     restoring it when the target is no longer reachable.
//
// Concept configuration sets are bitsets over configuration indices of the
// Set (github.com/bits-and-blooms/bitset). Vertex i of Poset.Graph is
// Poset.Concepts[i]. The poset is frozen once Build returns.
//
// Complexity:
//
//   - Extract: O(F·C + K log K · C/64) for F features, C configurations, K concepts
//   - Build:   O(K²·C/64) for the subset edges, plus Reduce
//   - Reduce:  O(E·(K+E))
//
// Errors:
//
//   - configuration.ErrNoConfigurations  no configurations supplied
//   - ErrEmptyConcept                    a concept without features
//   - ErrCyclicPoset                     the subset relation is cyclic
//   - ErrNoMaximum                       not exactly one sink
package poset
