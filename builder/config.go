// SPDX-License-Identifier: MIT
// Package: fcafm/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn     ("0","1","2",...)
//   • featureFn = "f" + decimal   (names of Random features)
//   • rng       = nil             (no randomness unless seeded)
//   • limit     = DefaultLimit
//   • sample    = 0               (keep the full product)

package builder

import "math/rand"

// DefaultLimit caps the size of a configuration product.
const DefaultLimit = 1 << 16

// builderConfig aggregates every knob used by BuildSet. Passed by value.
type builderConfig struct {
	idFn      IDFn
	featureFn IDFn
	rng       *rand.Rand
	limit     int
	sample    int
}

// newBuilderConfig applies opts over the defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		featureFn: PrefixIDFn("f", DefaultIDFn),
		limit:     DefaultLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
