package groups

import "math/bits"

// Cardinality returns the minimum and maximum number of members of group
// enabled together over assignments. With no assignments it returns 0, 0.
func Cardinality(group Mask, assignments []Mask) (min, max int) {
	for i, a := range assignments {
		c := bits.OnesCount32(group & a)
		if i == 0 || c < min {
			min = c
		}
		if i == 0 || c > max {
			max = c
		}
	}

	return min, max
}

// Cost returns the estimated number of configurations of a group whose
// members have the given weights and whose bounds are [min,max]:
//
//	dp[0]=1; for each weight w, for k from n down to 1: dp[k] += dp[k-1]·w
//	cost = Σ_{k=min}^{max} dp[k]
//
// dp[k] is the number of ways to select k members, each member counting for
// its own weight.
//
// Complexity: O(n²).
func Cost(weights []float64, min, max int) (float64, error) {
	n := len(weights)
	if err := ValidBounds(n, min, max); err != nil {
		return 0, err
	}

	dp := make([]float64, n+1)
	dp[0] = 1
	for _, w := range weights {
		for k := n; k >= 1; k-- {
			dp[k] += dp[k-1] * w
		}
	}

	var sum float64
	for k := min; k <= max; k++ {
		sum += dp[k]
	}

	return sum, nil
}

// members returns the indices set in m, ascending.
func members(m Mask) []int {
	out := make([]int, 0, bits.OnesCount32(m))
	for m != 0 {
		i := bits.TrailingZeros32(m)
		out = append(out, i)
		m &= m - 1
	}

	return out
}
