package groups

import (
	"errors"
	"fmt"
)

// MaxExactChildren is the largest child count solved by the exact DP.
const MaxExactChildren = 14

// MaxChildren is the widest partition a Mask can describe.
const MaxChildren = 31

// Mask is a set of child indices; bit i stands for child i.
type Mask = uint32

// Sentinel errors for group partitioning.
var (
	// ErrNoAssignments indicates Optimal was called without assignments.
	ErrNoAssignments = errors.New("groups: no assignments")

	// ErrTooManyChildren indicates more children than a Mask can hold.
	ErrTooManyChildren = errors.New("groups: too many children")

	// ErrInvalidBounds indicates bounds outside 0 ≤ min ≤ max ≤ size.
	ErrInvalidBounds = errors.New("groups: invalid bounds")
)

// Block is one group of a partition.
type Block struct {
	// Members are child indices, ascending.
	Members []int

	// Min and Max are the observed cardinality bounds.
	Min, Max int

	// Cost is the estimated number of configurations of the group.
	Cost float64
}

// Kind is the cardinality keyword of a group.
type Kind int

const (
	// Mandatory means [k,k]: every member is selected.
	Mandatory Kind = iota
	// Optional means [0,k]: any subset.
	Optional
	// Or means [1,k]: at least one member.
	Or
	// Alternative means [1,1]: exactly one member.
	Alternative
	// Range is any other [min,max].
	Range
)

// String returns the keyword of k; Range renders as "range".
func (k Kind) String() string {
	switch k {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	case Or:
		return "or"
	case Alternative:
		return "alternative"
	default:
		return "range"
	}
}

// KindOf classifies a group of size members with bounds [min,max].
// The checks run in keyword priority order, so a one-member [1,1] group is
// mandatory and a two-member [1,2] group is or.
func KindOf(size, min, max int) Kind {
	switch {
	case min == size && max == size:
		return Mandatory
	case min == 0 && max == size:
		return Optional
	case min == 1 && max == size:
		return Or
	case min == 1 && max == 1:
		return Alternative
	default:
		return Range
	}
}

// Keyword renders the cardinality line of a group: a KindOf keyword, or
// "[min..max]" for Range.
func Keyword(size, min, max int) string {
	if k := KindOf(size, min, max); k != Range {
		return k.String()
	}

	return fmt.Sprintf("[%d..%d]", min, max)
}

// ValidBounds checks 0 ≤ min ≤ max ≤ size.
func ValidBounds(size, min, max int) error {
	if min < 0 || min > max || max > size {
		return fmt.Errorf("[%d..%d] over %d members: %w", min, max, size, ErrInvalidBounds)
	}

	return nil
}
