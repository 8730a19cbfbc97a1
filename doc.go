// Package fcafm synthesizes feature models from observed product
// configurations, using the attribute-concepts of formal concept analysis.
//
// 🚀 What does it do?
//
//	Given the configurations a product line actually shipped, fcafm builds
//	a feature model that accepts every one of them:
//		• Concepts: one attribute-concept per distinct feature extent
//		• AC-poset: concepts ordered by extent inclusion, transitively reduced
//		• Tree: one parent per concept (max-depth, dfs or random selector)
//		• Groups: optimal partition of every node's children into
//		  mandatory / optional / or / alternative / [m..n] groups
//		• Constraints: cross-tree implications and pairwise exclusions
//		• Output: UVL-like text, plus an optional Graphviz view of the poset
//
// Under the hood the work is split into small packages:
//
//	core/          index-addressed directed graph arena
//	dfs/           iterative DFS, topological sort, cycles, reachability
//	configuration/ configuration sets and .csvconf / JSON / YAML loading
//	poset/         attribute-concept extraction and the reduced AC-poset
//	hierarchy/     tree-constraint selectors
//	groups/        exact and fallback child-group partitioning
//	fm/            feature model assembly and cross-tree constraints
//	uvl/           UVL-like text writer
//	converters/    Graphviz DOT export of the AC-poset
//	builder/       synthetic configuration-set generators
//	settings/      run settings (defaults, YAML/JSON file, FMSYNTH_* env)
//	synth/         the end-to-end pipeline with logging and metrics
//	cmd/fmsynth/   command-line interface
//
// Quick example, three phones sharing feature A:
//
//	{A}, {A, B}, {A, C}
//
// synthesize into
//
//	features
//		"root"
//			mandatory
//				"A"
//			[0..1]
//				"B"
//				"C"
//	constraints
//		"B" => !"C"
//
//	go install github.com/katalvlaran/fcafm/cmd/fmsynth@latest
package fcafm
