// Package converters exports fcafm graphs to external representations.
//
// WriteDOT renders a reduced AC-poset as a Graphviz digraph: one box per
// concept labelled with its features and the configurations attributed to
// it, edges pointing from the more specific concept to the more general one
// (rankdir=BT puts the maximum on top). With WithTree, tree edges are solid
// and cross-tree edges dashed.
package converters
