package fm

import (
	"errors"

	"github.com/katalvlaran/fcafm/groups"
)

// Synthetic feature names. Build appends _1, _2, ... to a name the
// universe already uses, and skips taken abstract_N numbers.
const (
	// UnusedFeaturesName is the abstract parent of features enabled nowhere.
	UnusedFeaturesName = "unused_features"

	// UnusedPlaceholderName pads a lone unused feature so the [0,0] group
	// has two members.
	UnusedPlaceholderName = "abstract_unused_feature"

	// AbstractPrefix prefixes synthetic group-wrapping features.
	AbstractPrefix = "abstract_"
)

var (
	// ErrNilInput indicates a nil poset or tree.
	ErrNilInput = errors.New("fm: nil poset or tree")
)

// Feature is a node of the feature model.
type Feature struct {
	Name     string
	Abstract bool
	Groups   []*Group

	// Estimate is the estimated number of configurations of the subtree.
	Estimate float64
}

// Group is a set of sibling features with cardinality bounds.
type Group struct {
	Features []*Feature
	Min, Max int

	// Estimate is the weighted subset count of Features over [Min,Max].
	Estimate float64
}

// Kind classifies g by its bounds.
func (g *Group) Kind() groups.Kind { return groups.KindOf(len(g.Features), g.Min, g.Max) }

// Keyword renders the cardinality keyword of g.
func (g *Group) Keyword() string { return groups.Keyword(len(g.Features), g.Min, g.Max) }

// ConstraintKind distinguishes cross-tree constraints.
type ConstraintKind int

const (
	// Implies means Left requires Right.
	Implies ConstraintKind = iota
	// Exclusive means Left and Right are never enabled together.
	Exclusive
)

// String implements fmt.Stringer.
func (k ConstraintKind) String() string {
	if k == Exclusive {
		return "exclusive"
	}

	return "implies"
}

// Constraint is a cross-tree constraint between two feature names.
type Constraint struct {
	Kind        ConstraintKind
	Left, Right string
}

// Stats summarizes one Build.
type Stats struct {
	Concepts             int
	Edges                int
	TreeEdges            int
	CrossTreeEdges       int
	ExactNodes           int
	FallbackNodes        int
	AbstractFeatures     int
	UnusedFeatures       int
	ImpliesConstraints   int
	ExclusiveConstraints int
}

// Model is a synthesized feature model.
type Model struct {
	Root        *Feature
	Constraints []Constraint
	Stats       Stats
}

// Find returns the first feature called name in pre-order, or nil.
func (m *Model) Find(name string) *Feature {
	if m == nil || m.Root == nil {
		return nil
	}
	stack := []*Feature{m.Root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.Name == name {
			return f
		}
		for gi := len(f.Groups) - 1; gi >= 0; gi-- {
			g := f.Groups[gi]
			for fi := len(g.Features) - 1; fi >= 0; fi-- {
				stack = append(stack, g.Features[fi])
			}
		}
	}

	return nil
}

// NewGroup builds a group over features with bounds [min,max] and computes
// its estimate from the members' estimates.
func NewGroup(features []*Feature, min, max int) (*Group, error) {
	w := make([]float64, len(features))
	for i, f := range features {
		w[i] = f.Estimate
	}
	est, err := groups.Cost(w, min, max)
	if err != nil {
		return nil, err
	}

	return &Group{Features: features, Min: min, Max: max, Estimate: est}, nil
}

// Mandatory builds the [n,n] group over features.
func Mandatory(features []*Feature) *Group {
	g, _ := NewGroup(features, len(features), len(features))
	return g
}

// Optional builds the [0,n] group over features.
func Optional(features []*Feature) *Group {
	g, _ := NewGroup(features, 0, len(features))
	return g
}

// Leaf returns a childless feature with estimate 1.
func Leaf(name string, abstract bool) *Feature {
	return &Feature{Name: name, Abstract: abstract, Estimate: 1}
}
