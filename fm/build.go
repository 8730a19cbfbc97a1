package fm

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/fcafm/groups"
	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
)

// namer hands out synthetic feature names that avoid every universe name
// and every name it handed out before; owned by one Build.
type namer struct {
	next  int
	count int
	taken map[string]struct{}
}

func newNamer(universe []string) namer {
	taken := make(map[string]struct{}, len(universe))
	for _, name := range universe {
		taken[name] = struct{}{}
	}

	return namer{taken: taken}
}

// name returns the next free abstract_N.
func (n *namer) name() string {
	for {
		n.next++
		s := fmt.Sprintf("%s%d", AbstractPrefix, n.next)
		if _, ok := n.taken[s]; !ok {
			n.taken[s] = struct{}{}
			n.count++
			return s
		}
	}
}

// reserve returns base, or base_1, base_2, ... when base is taken.
func (n *namer) reserve(base string) string {
	s := base
	for i := 1; ; i++ {
		if _, ok := n.taken[s]; !ok {
			break
		}
		s = fmt.Sprintf("%s_%d", base, i)
	}
	n.taken[s] = struct{}{}

	return s
}

// builder carries the state of one Build.
type builder struct {
	p        *poset.Poset
	tree     *hierarchy.Tree
	children [][]int
	opts     Options
	names    namer
	stats    Stats
	built    []*Feature
}

// Build assembles the feature model of p under tree.
//
// Steps:
//  1. Validate tree against p.
//  2. Post-order walk from the maximum along tree edges; each node is built
//     once all its tree children are.
//  3. Attach unused features below the root.
//  4. Emit cross-tree constraints.
func Build(p *poset.Poset, tree *hierarchy.Tree, opts ...Option) (*Model, error) {
	// 1. Validate
	if p == nil || tree == nil {
		return nil, ErrNilInput
	}
	if err := tree.Validate(p); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{
		p:        p,
		tree:     tree,
		children: tree.Children(),
		opts:     o,
		names:    newNamer(p.Universe),
		built:    make([]*Feature, len(p.Concepts)),
	}

	// 2. Explicit post-order stack
	type frame struct {
		v        int
		expanded bool
	}
	stack := []frame{{v: tree.Root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.expanded {
			top.expanded = true
			kids := b.children[top.v]
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, frame{v: kids[i]})
			}
			continue
		}
		v := top.v
		stack = stack[:len(stack)-1]
		f, err := b.node(v)
		if err != nil {
			return nil, fmt.Errorf("Build: concept %q: %w", p.Name(v), err)
		}
		b.built[v] = f
	}
	root := b.built[tree.Root]

	// 3. Unused features
	if len(p.Unused) > 0 {
		root.Groups = append(root.Groups, Mandatory([]*Feature{b.unusedFeature(p.Unused)}))
	}

	// 4. Constraints
	constraints := b.constraints()

	b.stats.Concepts = len(p.Concepts)
	b.stats.Edges = p.Graph.EdgeCount()
	b.stats.TreeEdges = len(p.Concepts) - 1
	b.stats.AbstractFeatures = b.names.count
	b.stats.UnusedFeatures = len(p.Unused)

	return &Model{Root: root, Constraints: constraints, Stats: b.stats}, nil
}

// node builds the feature of concept v from its already built children.
func (b *builder) node(v int) (*Feature, error) {
	c := b.p.Concepts[v]
	f := &Feature{Name: c.Name()}

	var leaves []*Feature
	for _, name := range c.Features[1:] {
		leaves = append(leaves, Leaf(name, false))
	}

	kids := b.children[v]
	kidFeatures := make([]*Feature, len(kids))
	for i, k := range kids {
		kidFeatures[i] = b.built[k]
	}
	weight := func(i int) float64 { return kidFeatures[i].Estimate }

	var out []*Group
	switch {
	case len(kids) == 0:
		if len(leaves) > 0 {
			out = append(out, Mandatory(leaves))
		}

	default:
		assignments, err := b.assignments(v, kids)
		if err != nil {
			return nil, err
		}
		blocks, exact, err := groups.Solve(len(kids), assignments, weight, b.opts.MaxExactChildren)
		if err != nil {
			return nil, err
		}

		if !exact {
			b.stats.FallbackNodes++
			if len(leaves) > 0 {
				out = append(out, Mandatory(leaves))
			}
			out = append(out, Optional(kidFeatures))
			break
		}
		b.stats.ExactNodes++

		if len(blocks) == 1 {
			g, err := NewGroup(pick(kidFeatures, blocks[0].Members), blocks[0].Min, blocks[0].Max)
			if err != nil {
				return nil, err
			}
			if len(leaves) > 0 {
				out = append(out, Mandatory(leaves))
			}
			out = append(out, g)
			break
		}

		// several blocks: one abstract wrapper each, all mandatory
		for _, blk := range blocks {
			g, err := NewGroup(pick(kidFeatures, blk.Members), blk.Min, blk.Max)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, &Feature{
				Name:     b.names.name(),
				Abstract: true,
				Groups:   []*Group{g},
				Estimate: g.Estimate,
			})
		}
		out = append(out, Mandatory(leaves))
	}

	f.Groups = out
	f.Estimate = 1
	for _, g := range out {
		f.Estimate *= g.Estimate
	}

	return f, nil
}

// assignments returns, for every configuration enabling some child of v,
// the mask of children it enables, in configuration order. The zero mask
// is appended according to the EmptyAssignment policy.
func (b *builder) assignments(v int, kids []int) ([]groups.Mask, error) {
	if len(kids) > groups.MaxChildren {
		// the flat fallback never reads assignments
		return nil, nil
	}

	union := bitset.New(uint(len(b.p.ConfigIDs)))
	for _, k := range kids {
		union.InPlaceUnion(b.p.Concepts[k].Inherited)
	}

	var out []groups.Mask
	for cfg, ok := union.NextSet(0); ok; cfg, ok = union.NextSet(cfg + 1) {
		var m groups.Mask
		for i, k := range kids {
			if b.p.Concepts[k].Inherited.Test(cfg) {
				m |= 1 << i
			}
		}
		out = append(out, m)
	}

	preds, err := b.p.Graph.Predecessors(v)
	if err != nil {
		return nil, err
	}
	crossTree := len(preds) != len(kids)
	attributed := b.p.Concepts[v].Configurations.Any()
	if crossTree || (b.opts.Empty == EmptyWhenAttributed && attributed) {
		out = append(out, 0)
	}

	return out, nil
}

// constraints lists Implies for every cross-tree edge, in edge order, then
// Exclusive for every pair of minimal concepts with disjoint configuration
// sets, once per pair with the smaller name on the left.
func (b *builder) constraints() []Constraint {
	var out []Constraint
	for _, e := range b.tree.CrossTree(b.p.Graph) {
		out = append(out, Constraint{Kind: Implies, Left: b.p.Name(e.From), Right: b.p.Name(e.To)})
		b.stats.CrossTreeEdges++
		b.stats.ImpliesConstraints++
	}

	minimal := b.p.Minimal()
	for _, i := range minimal {
		for _, j := range minimal {
			left, right := b.p.Name(i), b.p.Name(j)
			if left >= right {
				continue
			}
			if b.p.Concepts[i].Inherited.IntersectionCardinality(b.p.Concepts[j].Inherited) != 0 {
				continue
			}
			out = append(out, Constraint{Kind: Exclusive, Left: left, Right: right})
			b.stats.ExclusiveConstraints++
		}
	}

	return out
}

// unusedFeature builds the abstract holder of features enabled nowhere.
// Its names step aside when the universe already uses them.
func (b *builder) unusedFeature(names []string) *Feature {
	leaves := make([]*Feature, 0, len(names)+1)
	for _, name := range names {
		leaves = append(leaves, Leaf(name, false))
	}
	if len(leaves) == 1 {
		leaves = append(leaves, Leaf(b.names.reserve(UnusedPlaceholderName), true))
	}
	g, _ := NewGroup(leaves, 0, 0)

	return &Feature{Name: b.names.reserve(UnusedFeaturesName), Abstract: true, Groups: []*Group{g}, Estimate: g.Estimate}
}

// pick returns features[i] for every i in idx.
func pick(features []*Feature, idx []int) []*Feature {
	out := make([]*Feature, len(idx))
	for j, i := range idx {
		out[j] = features[i]
	}

	return out
}
