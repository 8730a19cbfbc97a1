package configuration

import (
	"fmt"
	"sort"
)

// NewSet validates configs and assembles a Set.
//
// The universe is the union of root, the explicitly supplied features and
// every name mentioned by any configuration. Names that never appear
// enabled stay in the universe; downstream they become unused features.
//
// Errors: ErrEmptyRoot, ErrNoConfigurations, ErrEmptyID, ErrDuplicateID.
//
// Complexity: O(C·F + F log F) for C configurations over F names.
func NewSet(root string, configs []Configuration, features ...string) (*Set, error) {
	// 1. Validate root and cardinality
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if len(configs) == 0 {
		return nil, ErrNoConfigurations
	}

	// 2. Validate identities and collect names
	seenID := make(map[string]struct{}, len(configs))
	seenName := map[string]struct{}{root: {}}
	for i, c := range configs {
		if c.ID == "" {
			return nil, fmt.Errorf("NewSet: configuration #%d: %w", i, ErrEmptyID)
		}
		if _, dup := seenID[c.ID]; dup {
			return nil, fmt.Errorf("NewSet: %q: %w", c.ID, ErrDuplicateID)
		}
		seenID[c.ID] = struct{}{}
		for name := range c.Features {
			seenName[name] = struct{}{}
		}
	}
	for _, name := range features {
		seenName[name] = struct{}{}
	}

	// 3. Root first, then sorted
	universe := make([]string, 0, len(seenName))
	for name := range seenName {
		if name != root && name != "" {
			universe = append(universe, name)
		}
	}
	sort.Strings(universe)
	universe = append([]string{root}, universe...)

	// 4. Copy configurations so the Set owns its data
	owned := make([]Configuration, len(configs))
	for i, c := range configs {
		m := make(map[string]bool, len(c.Features))
		for k, v := range c.Features {
			m[k] = v
		}
		owned[i] = Configuration{ID: c.ID, Features: m}
	}

	return &Set{Root: root, Features: universe, Configurations: owned}, nil
}

// SortByID orders configs by ID ascending, in place.
func SortByID(configs []Configuration) {
	sort.SliceStable(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
}
