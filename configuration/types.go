package configuration

import (
	"errors"
	"sort"
)

// Sentinel errors for configuration handling.
var (
	// ErrNoConfigurations indicates that a Set was requested with zero configurations.
	ErrNoConfigurations = errors.New("configuration: no configurations")

	// ErrEmptyRoot indicates the designated root feature name is empty.
	ErrEmptyRoot = errors.New("configuration: empty root name")

	// ErrEmptyID indicates a configuration without identity.
	ErrEmptyID = errors.New("configuration: empty configuration id")

	// ErrDuplicateID indicates two configurations share one identity.
	ErrDuplicateID = errors.New("configuration: duplicate configuration id")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("configuration: unsupported file format")

	// ErrMalformedRecord indicates a .csvconf record that is not `"name",bool`.
	ErrMalformedRecord = errors.New("configuration: malformed record")
)

// Configuration is one observed enable/disable assignment over features.
type Configuration struct {
	// ID identifies the configuration (file stem for .csvconf inputs).
	ID string `json:"id" yaml:"id"`

	// Features maps feature name to its enabled state.
	Features map[string]bool `json:"features" yaml:"features"`
}

// Enabled reports whether name is enabled; missing names are disabled.
func (c Configuration) Enabled(name string) bool {
	return c.Features[name]
}

// Names returns the feature names mentioned by c, sorted.
func (c Configuration) Names() []string {
	names := make([]string, 0, len(c.Features))
	for name := range c.Features {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Set is the read-only input of a synthesis run.
type Set struct {
	// Root is the designated root feature name; enabled in every configuration.
	Root string

	// Features is the feature-name universe: Root first, then the remaining
	// names sorted ascending.
	Features []string

	// Configurations in input order; index i is the bit position used for
	// configuration bitsets downstream.
	Configurations []Configuration
}

// Len returns the number of configurations in s.
func (s *Set) Len() int { return len(s.Configurations) }

// Enabled reports whether feature name is enabled in configuration i.
// The root name is enabled everywhere.
func (s *Set) Enabled(i int, name string) bool {
	if name == s.Root {
		return true
	}

	return s.Configurations[i].Enabled(name)
}

// IDs returns the configuration identities in index order.
func (s *Set) IDs() []string {
	ids := make([]string, len(s.Configurations))
	for i, c := range s.Configurations {
		ids[i] = c.ID
	}

	return ids
}
