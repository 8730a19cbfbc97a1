// SPDX-License-Identifier: MIT
// Package: fcafm/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Context is attached with %w at the constructor boundary.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewFeatures indicates a block with fewer names than it needs.
var ErrTooFewFeatures = errors.New("builder: too few features")

// ErrDuplicateFeature indicates a feature name used by two blocks or twice
// in one block.
var ErrDuplicateFeature = errors.New("builder: duplicate feature")

// ErrInvalidRange indicates Range bounds outside 0 ≤ min ≤ max ≤ k.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic path without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyConfigurations indicates the product exceeds the WithLimit cap.
var ErrTooManyConfigurations = errors.New("builder: too many configurations")

// ErrConstructFailed indicates a nil constructor or an unusable spec token.
var ErrConstructFailed = errors.New("builder: construction failed")
