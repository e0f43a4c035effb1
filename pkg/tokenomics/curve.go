package tokenomics

import "math"

const (
	// Bracket and iteration budget for the decay-rate bisection. The
	// bracket is deliberately generous; 200 halvings converge lambda to
	// machine precision across it.
	lambdaLow        = 1e-16
	lambdaHigh       = 1e-5
	lambdaIterations = 200
)

// Curve is a normalized geometric emission curve over the property universe:
// property i earns a0 * e^(-lambda*i) tokens, with a0 chosen so the rewards
// over all properties sum to the supply. Values are fixed at construction;
// all methods are pure.
type Curve struct {
	supply          float64
	totalProperties int64
	lambda          float64
	a0              float64
}

// NewCurve solves for the decay rate at which the final property's reward
// equals minLastReward, by bisection over a fixed bracket. When the floor is
// unreachable (at or above the uniform per-property reward) the flattest
// rate in the bracket is used rather than failing; the curve layer clamps,
// it never rejects.
func NewCurve(supply float64, totalProperties int64, minLastReward float64) *Curve {
	lo, hi := lambdaLow, lambdaHigh

	// Last-unit reward decreases as lambda grows: normalization shifts
	// emission toward the head of the range. Keep the floor-exceeding end
	// of the bracket on the low side.
	for i := 0; i < lambdaIterations; i++ {
		mid := (lo + hi) / 2
		if lastReward(supply, totalProperties, mid) > minLastReward {
			lo = mid
		} else {
			hi = mid
		}
	}

	lambda := (lo + hi) / 2
	return &Curve{
		supply:          supply,
		totalProperties: totalProperties,
		lambda:          lambda,
		a0:              firstReward(supply, totalProperties, lambda),
	}
}

// firstReward returns a0 for a given lambda via the finite geometric series
// identity: a0 = supply * (1-r) / (1-r^P) with r = e^(-lambda). The 1-e^(-x)
// terms go through Expm1 so they survive lambda values near the bottom of
// the bracket, where 1-e^(-lambda) cancels to zero in naive form.
func firstReward(supply float64, totalProperties int64, lambda float64) float64 {
	num := -math.Expm1(-lambda)
	den := -math.Expm1(-lambda * float64(totalProperties))
	return supply * num / den
}

func lastReward(supply float64, totalProperties int64, lambda float64) float64 {
	a0 := firstReward(supply, totalProperties, lambda)
	return a0 * math.Exp(-lambda*float64(totalProperties-1))
}

// Lambda returns the solved decay rate.
func (c *Curve) Lambda() float64 {
	return c.lambda
}

// Supply returns the total token supply the curve distributes.
func (c *Curve) Supply() float64 {
	return c.supply
}

// TotalProperties returns the number of property indices the curve spans.
func (c *Curve) TotalProperties() int64 {
	return c.totalProperties
}

// RewardAt returns the token reward of the property at index i. Indices are
// clamped into [0, totalProperties).
func (c *Curve) RewardAt(i int64) float64 {
	if i < 0 {
		i = 0
	}
	if i >= c.totalProperties {
		i = c.totalProperties - 1
	}
	return c.a0 * math.Exp(-c.lambda*float64(i))
}

// CumulativeReward returns the summed reward of count consecutive properties
// beginning at start, in closed form. Out-of-range inputs are clamped to the
// curve's span.
func (c *Curve) CumulativeReward(start, count int64) float64 {
	if start < 0 {
		start = 0
	}
	if start >= c.totalProperties || count <= 0 {
		return 0
	}
	if count > c.totalProperties-start {
		count = c.totalProperties - start
	}

	head := math.Exp(-c.lambda * float64(start))
	run := -math.Expm1(-c.lambda * float64(count))
	unit := -math.Expm1(-c.lambda)
	return c.a0 * head * run / unit
}
