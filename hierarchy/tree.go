package hierarchy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fcafm/core"
	"github.com/katalvlaran/fcafm/poset"
)

// Sentinel errors for tree selection.
var (
	// ErrNilPoset indicates a nil poset argument.
	ErrNilPoset = errors.New("hierarchy: poset is nil")

	// ErrInvalidTree indicates parents that do not form a spanning
	// in-arborescence over poset edges.
	ErrInvalidTree = errors.New("hierarchy: invalid tree")

	// ErrUnknownSelector indicates an unknown selector name.
	ErrUnknownSelector = errors.New("hierarchy: unknown selector")
)

// Tree labels one poset edge per node as its parent link.
type Tree struct {
	// Parent[v] is the tree parent of v; Parent[Root] is -1.
	Parent []int

	// Root is the poset maximum.
	Root int
}

// Selector chooses the tree edges of a poset.
type Selector interface {
	// Select returns one parent per non-root concept of p.
	Select(p *poset.Poset) (*Tree, error)
}

// Children returns the tree children of every vertex, each list ascending.
func (t *Tree) Children() [][]int {
	children := make([][]int, len(t.Parent))
	for v, parent := range t.Parent {
		if parent >= 0 {
			children[parent] = append(children[parent], v)
		}
	}

	return children
}

// IsTreeEdge reports whether from→to is the parent link of from.
func (t *Tree) IsTreeEdge(from, to int) bool {
	return from >= 0 && from < len(t.Parent) && t.Parent[from] == to
}

// CrossTree returns the poset edges that are not tree edges, in the
// graph's sorted edge order.
func (t *Tree) CrossTree(g *core.Digraph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		if !t.IsTreeEdge(e.From, e.To) {
			out = append(out, e)
		}
	}

	return out
}

// Validate checks t against p: one parent per non-root vertex, each parent
// link is a poset edge, and following parents from any vertex reaches the
// root in at most |V| steps.
func (t *Tree) Validate(p *poset.Poset) error {
	if p == nil {
		return ErrNilPoset
	}
	n := p.Graph.Order()
	if len(t.Parent) != n {
		return fmt.Errorf("Validate: %d parents for %d concepts: %w", len(t.Parent), n, ErrInvalidTree)
	}
	if t.Root != p.Max || t.Parent[t.Root] != -1 {
		return fmt.Errorf("Validate: root %d is not the maximum %d: %w", t.Root, p.Max, ErrInvalidTree)
	}
	for v, parent := range t.Parent {
		if v == t.Root {
			continue
		}
		if !p.Graph.HasEdge(v, parent) {
			return fmt.Errorf("Validate: %d->%d is not a poset edge: %w", v, parent, ErrInvalidTree)
		}
	}
	for v := range t.Parent {
		cur, steps := v, 0
		for cur != t.Root {
			if steps >= n {
				return fmt.Errorf("Validate: vertex %d never reaches the root: %w", v, ErrInvalidTree)
			}
			cur = t.Parent[cur]
			steps++
		}
	}

	return nil
}

// newTree returns a Tree with every parent unset.
func newTree(p *poset.Poset) *Tree {
	parent := make([]int, p.Graph.Order())
	for i := range parent {
		parent[i] = -1
	}

	return &Tree{Parent: parent, Root: p.Max}
}
