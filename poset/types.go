package poset

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/fcafm/core"
)

// Sentinel errors for AC-poset construction.
var (
	// ErrEmptyConcept indicates a concept carrying zero features.
	ErrEmptyConcept = errors.New("poset: concept has no features")

	// ErrCyclicPoset indicates the subset relation produced a cycle.
	ErrCyclicPoset = errors.New("poset: cyclic AC-poset")

	// ErrNoMaximum indicates the poset does not have exactly one sink.
	ErrNoMaximum = errors.New("poset: no unique maximum")
)

// Concept is an attribute-concept: the features that are enabled by exactly
// the same configurations.
type Concept struct {
	// Features co-occurring identically; the root name first when present,
	// the rest ascending. Features[0] is the canonical name.
	Features []string

	// Configurations attributable to this concept after redundancy removal.
	Configurations *bitset.BitSet

	// Inherited is the full configuration set enabling the features.
	// Never modified after extraction.
	Inherited *bitset.BitSet
}

// Name returns the canonical feature name of c.
func (c Concept) Name() string { return c.Features[0] }

// Poset is the reduced AC-poset. Edge u→v means Inherited(u) ⊆ Inherited(v).
type Poset struct {
	// Concepts indexed like Graph vertices.
	Concepts []Concept

	// Graph holds the reduced subset edges.
	Graph *core.Digraph

	// Max is the unique sink, the concept containing the root feature.
	Max int

	// Universe is the feature-name universe of the source Set.
	Universe []string

	// Unused lists universe names enabled by no configuration, in universe order.
	Unused []string

	// ConfigIDs maps bit positions of the bitsets to configuration IDs.
	ConfigIDs []string
}

// Name returns the canonical name of concept i.
func (p *Poset) Name(i int) string { return p.Concepts[i].Name() }

// Minimal returns the concepts with no incoming edges, ascending.
func (p *Poset) Minimal() []int { return p.Graph.Sources() }
