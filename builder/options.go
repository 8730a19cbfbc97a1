// SPDX-License-Identifier: MIT
// Package: fcafm/builder
//
// options.go: functional options for BuildSet.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; BuildSet
// itself never panics.

package builder

import "math/rand"

// BuilderOption customizes BuildSet by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the configuration ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithFeatureScheme sets the name generator of Random features. Panics on nil.
func WithFeatureScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFeatureScheme(nil)")
	}
	return func(c *builderConfig) { c.featureFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; equal seeds give equal sets.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLimit caps the product size. Panics if n < 1.
func WithLimit(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithLimit(n<1)")
	}
	return func(c *builderConfig) { c.limit = n }
}

// WithSample keeps n configurations drawn without replacement from the
// product, in product order. Requires an RNG. Panics if n < 1.
func WithSample(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithSample(n<1)")
	}
	return func(c *builderConfig) { c.sample = n }
}
