package fm

import (
	"fmt"

	"github.com/katalvlaran/fcafm/groups"
)

// EmptyAssignment selects when the all-zero assignment ("none of the
// children") joins a node's assignment list.
type EmptyAssignment int

const (
	// EmptyWhenAttributed adds it when the node's concept keeps attributed
	// configurations or the node has a cross-tree predecessor. Every observed
	// configuration stays valid in the model.
	EmptyWhenAttributed EmptyAssignment = iota

	// EmptyOnCrossTree adds it only for nodes with a cross-tree predecessor.
	// Models get tighter but may reject configurations enabling none of a
	// node's children.
	EmptyOnCrossTree
)

// Option configures Build.
type Option func(*Options)

// Options holds the tunables of Build.
type Options struct {
	// MaxExactChildren caps the exact partition search.
	MaxExactChildren int

	// Empty is the zero-assignment policy.
	Empty EmptyAssignment
}

// DefaultOptions returns the exact-search cap groups.MaxExactChildren and
// the EmptyWhenAttributed policy.
func DefaultOptions() Options {
	return Options{MaxExactChildren: groups.MaxExactChildren, Empty: EmptyWhenAttributed}
}

// WithMaxExactChildren lowers the exact-search cap.
// Panics if n is outside [1, groups.MaxExactChildren].
func WithMaxExactChildren(n int) Option {
	if n < 1 || n > groups.MaxExactChildren {
		panic(fmt.Sprintf("fm: WithMaxExactChildren(%d): want 1..%d", n, groups.MaxExactChildren))
	}
	return func(o *Options) { o.MaxExactChildren = n }
}

// WithEmptyAssignment sets the zero-assignment policy.
// Panics on an unknown policy.
func WithEmptyAssignment(p EmptyAssignment) Option {
	if p != EmptyWhenAttributed && p != EmptyOnCrossTree {
		panic(fmt.Sprintf("fm: WithEmptyAssignment(%d): unknown policy", p))
	}
	return func(o *Options) { o.Empty = p }
}

// ParseEmptyAssignment maps "attributed" and "cross-tree" to a policy.
func ParseEmptyAssignment(s string) (EmptyAssignment, error) {
	switch s {
	case "", "attributed":
		return EmptyWhenAttributed, nil
	case "cross-tree":
		return EmptyOnCrossTree, nil
	default:
		return 0, fmt.Errorf("fm: unknown empty-assignment policy %q", s)
	}
}
