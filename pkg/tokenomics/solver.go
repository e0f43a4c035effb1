package tokenomics

import "math"

const (
	// Absolute tolerance, in token units, at which a candidate property
	// count is accepted as matching the budget.
	allocTolerance = 1e-6

	// Iteration budget for the count bisection. If the tolerance is never
	// hit the last upper bound is returned; the cumulative reward is
	// strictly increasing in count, so the bound brackets the answer.
	allocIterations = 120
)

// PropertiesForTokens inverts the curve: it returns the number of properties
// a token budget buys starting at startIndex. A budget covering the whole
// remaining range saturates to that range; an exhausted range yields zero.
// Inputs are clamped, never rejected.
func (c *Curve) PropertiesForTokens(tokenBudget float64, startIndex int64) int64 {
	if startIndex < 0 {
		startIndex = 0
	}
	remaining := c.totalProperties - startIndex
	if remaining <= 0 || tokenBudget <= 0 {
		return 0
	}
	if tokenBudget >= c.CumulativeReward(startIndex, remaining) {
		return remaining
	}

	lo, hi := int64(0), remaining
	for i := 0; i < allocIterations && lo < hi; i++ {
		mid := lo + (hi-lo)/2
		reward := c.CumulativeReward(startIndex, mid)
		if math.Abs(reward-tokenBudget) <= allocTolerance {
			return mid
		}
		if reward < tokenBudget {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return hi
}
