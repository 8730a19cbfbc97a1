// Package fm assembles a feature model from a reduced AC-poset and its tree
// constraints.
//
// Walk (Build):
//
//   - One Feature per concept, named after the concept's canonical feature.
//     The concept's other features become mandatory leaves, encoding the
//     equivalence discovered during extraction.
//   - Tree children are partitioned into cardinality groups by
//     groups.Solve. A single block becomes one group next to the mandatory
//     leaves; several blocks are each wrapped in an abstract feature
//     "abstract_N" so every node owns at most one non-mandatory group.
//   - Above the child-count cap the children form one optional group.
//   - Features enabled by no configuration hang below an abstract
//     "unused_features" node in a [0,0] group.
//   - Every cross-tree poset edge yields Implies(src, dst); every pair of
//     minimal concepts with disjoint configuration sets yields Exclusive.
//
// The walk runs on an explicit post-order work stack over concept indices,
// and the abstract-feature counter is owned by the build, so Build is
// deterministic and reentrant.
package fm
