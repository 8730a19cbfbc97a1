package groups

import (
	"fmt"
	"math"
)

// Optimal returns the cost-minimizing partition of children 0..n-1.
// weight(i) is the estimated configuration count of child i.
//
// Blocks are returned in reconstruction order; the first block always
// contains child 0. For n == 0 it returns no blocks.
func Optimal(n int, assignments []Mask, weight func(i int) float64) ([]Block, error) {
	// 1. Validate
	if n < 0 || n > MaxChildren {
		return nil, fmt.Errorf("Optimal: n=%d: %w", n, ErrTooManyChildren)
	}
	if n == 0 {
		return nil, nil
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("Optimal: %w", ErrNoAssignments)
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = weight(i)
	}

	// 2. Bounds and cost of every subset
	full := Mask(1) << n
	cost := make([]float64, full)
	lo := make([]int, full)
	hi := make([]int, full)
	sub := make([]float64, 0, n)
	for g := Mask(1); g < full; g++ {
		lo[g], hi[g] = Cardinality(g, assignments)
		sub = sub[:0]
		for _, i := range members(g) {
			sub = append(sub, w[i])
		}
		c, err := Cost(sub, lo[g], hi[g])
		if err != nil {
			return nil, fmt.Errorf("Optimal: %w", err)
		}
		cost[g] = c
	}

	// 3. Partition DP; only blocks holding the lowest set bit are tried
	dp := make([]float64, full)
	choice := make([]Mask, full)
	dp[0] = 1
	for s := Mask(1); s < full; s++ {
		dp[s] = math.Inf(1)
		lsb := s & (^s + 1)
		for g := s; g != 0; g = (g - 1) & s {
			if g&lsb == 0 {
				continue
			}
			val := dp[s^g] * cost[g]
			if choice[s] == 0 || val < dp[s] {
				dp[s] = val
				choice[s] = g
			}
		}
	}

	// 4. Reconstruct
	var blocks []Block
	for mask := full - 1; mask != 0; mask ^= choice[mask] {
		g := choice[mask]
		blocks = append(blocks, Block{
			Members: members(g),
			Min:     lo[g],
			Max:     hi[g],
			Cost:    cost[g],
		})
	}

	return blocks, nil
}

// Solve partitions n children exactly when n ≤ limit and otherwise returns
// a single optional block [0,n] over all children. exact reports which path
// was taken. A limit ≤ 0 or above MaxExactChildren means MaxExactChildren.
func Solve(n int, assignments []Mask, weight func(i int) float64, limit int) (blocks []Block, exact bool, err error) {
	if limit <= 0 || limit > MaxExactChildren {
		limit = MaxExactChildren
	}
	if n <= limit {
		blocks, err = Optimal(n, assignments, weight)
		return blocks, true, err
	}

	return Flat(n, weight), false, nil
}

// Flat returns the fallback partition: one block [0,n] over all children.
func Flat(n int, weight func(i int) float64) []Block {
	if n <= 0 {
		return nil
	}
	m := make([]int, n)
	w := make([]float64, n)
	for i := range m {
		m[i] = i
		w[i] = weight(i)
	}
	c, _ := Cost(w, 0, n)

	return []Block{{Members: m, Min: 0, Max: n, Cost: c}}
}
