package tokenomics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSupply     = 1_000_000_000.0
	testProperties = int64(150_000_000)
	testMinReward  = 0.05
)

func testCurve(t *testing.T) *Curve {
	t.Helper()
	return NewCurve(testSupply, testProperties, testMinReward)
}

func TestCurveLambdaWithinBracket(t *testing.T) {
	c := testCurve(t)
	assert.Greater(t, c.Lambda(), 1e-16)
	assert.Less(t, c.Lambda(), 1e-5)
}

func TestCurveLastRewardHitsFloor(t *testing.T) {
	c := testCurve(t)
	assert.InDelta(t, testMinReward, c.RewardAt(testProperties-1), 1e-6)
}

func TestCurveSumsToSupply(t *testing.T) {
	c := testCurve(t)
	assert.InEpsilon(t, testSupply, c.CumulativeReward(0, testProperties), 1e-9)
}

func TestCurveRewardDecays(t *testing.T) {
	c := testCurve(t)
	first := c.RewardAt(0)
	mid := c.RewardAt(testProperties / 2)
	last := c.RewardAt(testProperties - 1)

	assert.Greater(t, first, mid)
	assert.Greater(t, mid, last)
}

func TestCumulativeMatchesPointwiseSum(t *testing.T) {
	c := testCurve(t)

	start := int64(1_000_000)
	count := int64(500)

	sum := 0.0
	for i := int64(0); i < count; i++ {
		sum += c.RewardAt(start + i)
	}

	assert.InEpsilon(t, sum, c.CumulativeReward(start, count), 1e-9)
}

func TestCumulativeClampsRange(t *testing.T) {
	c := testCurve(t)

	assert.Equal(t, 0.0, c.CumulativeReward(testProperties, 10))
	assert.Equal(t, 0.0, c.CumulativeReward(0, 0))

	// Overshooting the universe clamps to the remainder.
	tail := c.CumulativeReward(testProperties-100, 100)
	over := c.CumulativeReward(testProperties-100, 1_000_000)
	assert.Equal(t, tail, over)
}

func TestCurveIsStrictlyIncreasingInCount(t *testing.T) {
	c := testCurve(t)

	prev := 0.0
	for _, count := range []int64{1, 10, 1_000, 1_000_000, testProperties} {
		cur := c.CumulativeReward(0, count)
		require.Greater(t, cur, prev, "count %d", count)
		prev = cur
	}
}
