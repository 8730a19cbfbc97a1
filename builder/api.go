// SPDX-License-Identifier: MIT
// Package: fcafm/builder
//
// api.go: public entry point of the builder package.
//
// Contract:
//   - One orchestrator: BuildSet(root, bopts, cons...). Resolves the config,
//     runs cons in order, expands the product and returns a validated Set.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical sets.
//   - Safety: never panics; constructors return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fcafm/configuration"
)

// Constructor adds one block of features to a composition.
type Constructor func(c *composition, cfg builderConfig) error

// composition accumulates blocks in constructor order.
type composition struct {
	blocks []block
	random []randomBlock
	names  []string
	seen   map[string]struct{}
}

// block is a group of names with its enumerated local states; each state
// lists the enabled names.
type block struct {
	names  []string
	states [][]string
}

// randomBlock is a group of names enabled independently with probability p.
type randomBlock struct {
	names []string
	p     float64
}

// claim registers names, rejecting duplicates.
func (c *composition) claim(method string, names []string) error {
	for _, n := range names {
		if _, dup := c.seen[n]; dup || n == "" {
			return fmt.Errorf("%s: %q: %w", method, n, ErrDuplicateFeature)
		}
		c.seen[n] = struct{}{}
	}
	c.names = append(c.names, names...)

	return nil
}

// BuildSet builds the configuration set rooted at root from cons.
//
// Steps:
//  1. Resolve options and run every constructor in order.
//  2. Size the product of block states; reject sizes above the limit.
//  3. Pick product indices: all, or a sorted sample.
//  4. Decode each index (first block slowest), then draw Random features.
//  5. Validate through configuration.NewSet; never-enabled names stay in
//     the universe.
func BuildSet(root string, bopts []BuilderOption, cons ...Constructor) (*configuration.Set, error) {
	// 1. Config and blocks
	cfg := newBuilderConfig(bopts...)
	comp := &composition{seen: map[string]struct{}{root: {}}}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSet: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(comp, cfg); err != nil {
			return nil, fmt.Errorf("BuildSet: %w", err)
		}
	}

	// 2. Product size
	total := 1
	for _, b := range comp.blocks {
		if total > cfg.limit/len(b.states) {
			return nil, fmt.Errorf("BuildSet: more than %d configurations: %w", cfg.limit, ErrTooManyConfigurations)
		}
		total *= len(b.states)
	}

	// 3. Indices
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	if cfg.sample > 0 {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildSet: sample: %w", ErrNeedRandSource)
		}
		if cfg.sample < total {
			indices = cfg.rng.Perm(total)[:cfg.sample]
			sort.Ints(indices)
		}
	}

	// 4. Decode
	configs := make([]configuration.Configuration, len(indices))
	for out, idx := range indices {
		features := make(map[string]bool, len(comp.names))
		for _, n := range comp.names {
			features[n] = false
		}
		for b := len(comp.blocks) - 1; b >= 0; b-- {
			states := comp.blocks[b].states
			for _, n := range states[idx%len(states)] {
				features[n] = true
			}
			idx /= len(states)
		}
		for _, rb := range comp.random {
			for _, n := range rb.names {
				features[n] = cfg.rng.Float64() < rb.p
			}
		}
		configs[out] = configuration.Configuration{ID: cfg.idFn(out), Features: features}
	}

	// 5. Validate
	set, err := configuration.NewSet(root, configs, comp.names...)
	if err != nil {
		return nil, fmt.Errorf("BuildSet: %w", err)
	}

	return set, nil
}
