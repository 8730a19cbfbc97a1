package poset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/dfs"
)

// Build extracts the concepts of set and assembles the reduced AC-poset.
//
// Steps:
//  1. Extract concepts.
//  2. For every ordered pair (i,j), i≠j, add i→j iff Inherited(i) ⊆ Inherited(j).
//  3. Verify the graph is acyclic and has exactly one sink.
//  4. Attribute configurations: Configurations(j) is the fold over all
//     predecessors p of Inherited(j)\Inherited(p), seeded by the first
//     predecessor and intersected with each following one.
//  5. Transitively reduce the graph.
func Build(set *configuration.Set) (*Poset, error) {
	// 1. Concepts
	concepts, err := Extract(set)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// 2. Subset edges
	k := len(concepts)
	g := core.NewDigraph(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j || !concepts[j].Inherited.IsSuperSet(concepts[i].Inherited) {
				continue
			}
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	// 3. Structural checks
	if _, err = dfs.TopologicalSort(g); err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			cycle, _, _ := dfs.FindCycle(g)
			return nil, fmt.Errorf("Build: concepts %v: %w: %w", cycle, ErrCyclicPoset, err)
		}
		return nil, fmt.Errorf("Build: %w", err)
	}
	sinks := g.Sinks()
	if len(sinks) != 1 {
		return nil, fmt.Errorf("Build: %d sinks: %w", len(sinks), ErrNoMaximum)
	}

	// 4. Attribution
	if err = dedupe(concepts, g); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// 5. Reduction
	if err = Reduce(g); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return &Poset{
		Concepts:  concepts,
		Graph:     g,
		Max:       sinks[0],
		Universe:  append([]string(nil), set.Features...),
		Unused:    unused(set.Features, concepts),
		ConfigIDs: set.IDs(),
	}, nil
}

// dedupe assigns each concept the configurations not already explained by
// any of its predecessors. Only Inherited sets are read, so the result does
// not depend on the order concepts are processed in.
func dedupe(concepts []Concept, g *core.Digraph) error {
	for j := range concepts {
		preds, err := g.Predecessors(j)
		if err != nil {
			return err
		}
		if len(preds) == 0 {
			continue
		}
		own := concepts[j].Inherited
		acc := own.Difference(concepts[preds[0]].Inherited)
		for _, p := range preds[1:] {
			acc.InPlaceIntersection(own.Difference(concepts[p].Inherited))
		}
		concepts[j].Configurations = acc
	}

	return nil
}

// unused returns the universe names that no concept carries.
func unused(universe []string, concepts []Concept) []string {
	used := make(map[string]struct{})
	for _, c := range concepts {
		for _, f := range c.Features {
			used[f] = struct{}{}
		}
	}
	var out []string
	for _, name := range universe {
		if _, ok := used[name]; !ok {
			out = append(out, name)
		}
	}

	return out
}
