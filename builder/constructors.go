package builder

import "fmt"

// Method tokens used as error context.
const (
	MethodMandatory   = "Mandatory"
	MethodOptional    = "Optional"
	MethodAlternative = "Alternative"
	MethodOr          = "Or"
	MethodRange       = "Range"
	MethodRandom      = "Random"
)

// maxEnumerated bounds the names of one enumerated block (2^k states).
const maxEnumerated = 20

// Mandatory enables every name in every configuration.
func Mandatory(names ...string) Constructor {
	return func(c *composition, _ builderConfig) error {
		if len(names) < 1 {
			return fmt.Errorf("%s: %w", MethodMandatory, ErrTooFewFeatures)
		}
		if err := c.claim(MethodMandatory, names); err != nil {
			return err
		}
		c.blocks = append(c.blocks, block{names: names, states: [][]string{append([]string(nil), names...)}})
		return nil
	}
}

// Optional enumerates every subset of names.
func Optional(names ...string) Constructor {
	return enumerated(MethodOptional, names, 1, func(k, size int) bool { return true })
}

// Alternative enumerates exactly one of names. Needs at least two names.
func Alternative(names ...string) Constructor {
	return enumerated(MethodAlternative, names, 2, func(k, size int) bool { return size == 1 })
}

// Or enumerates every non-empty subset of names. Needs at least two names.
func Or(names ...string) Constructor {
	return enumerated(MethodOr, names, 2, func(k, size int) bool { return size >= 1 })
}

// Range enumerates every subset of names with min..max members.
func Range(min, max int, names ...string) Constructor {
	return func(c *composition, cfg builderConfig) error {
		if min < 0 || min > max || max > len(names) {
			return fmt.Errorf("%s: [%d..%d] over %d names: %w", MethodRange, min, max, len(names), ErrInvalidRange)
		}
		return enumerated(MethodRange, names, 1, func(k, size int) bool {
			return size >= min && size <= max
		})(c, cfg)
	}
}

// Random adds n generated names, each enabled with probability p in every
// configuration independently. Needs an RNG.
func Random(n int, p float64) Constructor {
	return func(c *composition, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", MethodRandom, n, ErrTooFewFeatures)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", MethodRandom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}
		offset := 0
		for _, rb := range c.random {
			offset += len(rb.names)
		}
		names := make([]string, n)
		for i := range names {
			names[i] = cfg.featureFn(offset + i)
		}
		if err := c.claim(MethodRandom, names); err != nil {
			return err
		}
		c.random = append(c.random, randomBlock{names: names, p: p})
		return nil
	}
}

// enumerated builds a block whose states are the subsets of names, by
// ascending mask, accepted by keep.
func enumerated(method string, names []string, minNames int, keep func(k, size int) bool) Constructor {
	return func(c *composition, cfg builderConfig) error {
		if len(names) < minNames {
			return fmt.Errorf("%s: %d names: %w", method, len(names), ErrTooFewFeatures)
		}
		if len(names) > maxEnumerated {
			return fmt.Errorf("%s: %d names: %w", method, len(names), ErrTooManyConfigurations)
		}
		if err := c.claim(method, names); err != nil {
			return err
		}

		k := len(names)
		var states [][]string
		for mask := 0; mask < 1<<k; mask++ {
			var on []string
			for i := 0; i < k; i++ {
				if mask&(1<<i) != 0 {
					on = append(on, names[i])
				}
			}
			if keep(k, len(on)) {
				states = append(states, on)
			}
		}
		c.blocks = append(c.blocks, block{names: names, states: states})
		return nil
	}
}
