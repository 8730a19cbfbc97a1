package hierarchy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcafm/dfs"
	"github.com/katalvlaran/fcafm/poset"
)

// Selector names accepted by ByName.
const (
	NameMaxDepth        = "max-depth"
	NameFirstDiscovered = "dfs"
	NameRandom          = "random"
)

// ByName resolves a selector policy. seed is used by the random policy only.
func ByName(name string, seed int64) (Selector, error) {
	switch name {
	case "", NameMaxDepth:
		return MaxDepth{}, nil
	case NameFirstDiscovered:
		return FirstDiscovered{}, nil
	case NameRandom:
		return Random{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("ByName %q: %w", name, ErrUnknownSelector)
	}
}

// MaxDepth attaches every concept under its most specific ancestor.
type MaxDepth struct{}

// Select implements Selector.
//
// Steps:
//  1. Topologically sort the poset (sources first, maximum last).
//  2. Walk the order backward: depth(max)=0, depth(v)=1+max depth(successor).
//  3. Parent(v) = successor of greatest depth; ties by smallest canonical
//     name, then smallest index.
func (MaxDepth) Select(p *poset.Poset) (*Tree, error) {
	if p == nil {
		return nil, ErrNilPoset
	}

	// 1. Order
	order, err := dfs.TopologicalSort(p.Graph)
	if err != nil {
		return nil, fmt.Errorf("MaxDepth: %w", err)
	}

	// 2-3. Depths and parents
	t := newTree(p)
	depth := make([]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if v == p.Max {
			continue
		}
		succ, err := p.Graph.Successors(v)
		if err != nil {
			return nil, fmt.Errorf("MaxDepth: %w", err)
		}
		if len(succ) == 0 {
			return nil, fmt.Errorf("MaxDepth: concept %d has no successor: %w", v, ErrInvalidTree)
		}
		best := succ[0]
		for _, s := range succ[1:] {
			switch {
			case depth[s] > depth[best]:
				best = s
			case depth[s] == depth[best] && p.Name(s) < p.Name(best):
				best = s
			}
		}
		t.Parent[v] = best
		depth[v] = depth[best] + 1
	}

	return t, nil
}

// FirstDiscovered attaches every concept under the vertex that reaches it
// first in a DFS from the maximum over incoming edges.
type FirstDiscovered struct{}

// Select implements Selector.
func (FirstDiscovered) Select(p *poset.Poset) (*Tree, error) {
	if p == nil {
		return nil, ErrNilPoset
	}
	res, err := dfs.DFS(p.Graph, p.Max, dfs.WithDirection(dfs.Backward))
	if err != nil {
		return nil, fmt.Errorf("FirstDiscovered: %w", err)
	}
	for v, seen := range res.Visited {
		if !seen {
			return nil, fmt.Errorf("FirstDiscovered: concept %d unreachable: %w", v, ErrInvalidTree)
		}
	}

	return &Tree{Parent: res.Parent, Root: p.Max}, nil
}

// Random attaches every concept under a uniformly chosen successor.
// Equal seeds give equal trees.
type Random struct {
	Seed int64
}

// Select implements Selector.
func (r Random) Select(p *poset.Poset) (*Tree, error) {
	if p == nil {
		return nil, ErrNilPoset
	}
	rng := rand.New(rand.NewSource(r.Seed))
	t := newTree(p)
	for v := 0; v < p.Graph.Order(); v++ {
		if v == p.Max {
			continue
		}
		succ, err := p.Graph.Successors(v)
		if err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
		if len(succ) == 0 {
			return nil, fmt.Errorf("Random: concept %d has no successor: %w", v, ErrInvalidTree)
		}
		t.Parent[v] = succ[rng.Intn(len(succ))]
	}

	return t, nil
}
