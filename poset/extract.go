package poset

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/fcafm/configuration"
)

// Extract computes the attribute-concepts of set.
//
// Steps:
//  1. For every universe name build the bitset of configurations enabling it
//     (the root is enabled in all of them).
//  2. Group names with equal bitsets; names enabled nowhere are skipped.
//  3. Sort concepts by configuration set, comparing ascending index
//     sequences lexicographically.
//
// Universe order is root first then ascending, so each concept's Features
// inherit that order without further sorting.
func Extract(set *configuration.Set) ([]Concept, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("Extract: %w", configuration.ErrNoConfigurations)
	}

	// 1. Per-feature bitsets
	n := uint(set.Len())
	var concepts []Concept
	index := make(map[string]int)
	for _, name := range set.Features {
		bits := bitset.New(n)
		for i := 0; i < set.Len(); i++ {
			if set.Enabled(i, name) {
				bits.Set(uint(i))
			}
		}
		if bits.None() {
			continue
		}

		// 2. Merge into an existing concept with the same set
		key := setKey(bits)
		if k, ok := index[key]; ok {
			concepts[k].Features = append(concepts[k].Features, name)
		} else {
			index[key] = len(concepts)
			concepts = append(concepts, Concept{
				Features:       []string{name},
				Configurations: bits.Clone(),
				Inherited:      bits,
			})
		}
	}

	for i, c := range concepts {
		if len(c.Features) == 0 {
			return nil, fmt.Errorf("Extract: concept #%d: %w", i, ErrEmptyConcept)
		}
	}

	// 3. Deterministic order
	sort.SliceStable(concepts, func(i, j int) bool {
		return lessBits(concepts[i].Inherited, concepts[j].Inherited)
	})

	return concepts, nil
}

// lessBits compares the ascending index sequences of a and b
// lexicographically; a proper prefix sorts first.
func lessBits(a, b *bitset.BitSet) bool {
	i, okA := a.NextSet(0)
	j, okB := b.NextSet(0)
	for okA && okB {
		if i != j {
			return i < j
		}
		i, okA = a.NextSet(i + 1)
		j, okB = b.NextSet(j + 1)
	}

	return !okA && okB
}

// setKey encodes every word of b, so equal keys mean equal sets. All sets
// of one Extract share a length.
func setKey(b *bitset.BitSet) string {
	words := b.Bytes()
	buf := make([]byte, 0, 8*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return string(buf)
}
