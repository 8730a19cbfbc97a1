// Package builder composes synthetic configuration sets from small feature
// blocks, for experiments and test fixtures.
//
// A set is the cartesian product of its blocks' local states, optionally
// sampled, with independently random features applied last:
//
//   - Mandatory(names...):          every name enabled in every configuration.
//   - Optional(names...):           every subset (2^k states).
//   - Alternative(names...):        exactly one name (k states).
//   - Or(names...):                 every non-empty subset (2^k - 1 states).
//   - Range(min, max, names...):    every subset with min..max names.
//   - Random(n, p):                 n generated names, each enabled with
//     probability p per configuration (needs WithSeed or WithRand).
//
// Product order is deterministic: the first block varies slowest, and a
// block's states are enumerated by ascending subset mask (bit i = names[i]).
//
// Configuration IDs come from the ID scheme (WithIDScheme, default decimal).
// Option constructors panic on meaningless values; constructors and
// BuildSet return sentinel errors.
//
// Parse turns a compact text form ("alt:B,C;or:x,y;opt:p") into
// constructors, which the fmsynth CLI uses.
package builder
