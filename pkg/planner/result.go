package planner

import "github.com/parcelworks/extraction-planner/pkg/simulation"

// CostBreakdown splits a plan's dollar cost by component. Storage, compute,
// chain gas and labor are one-time extraction costs; HeartbeatWeekly is the
// first steady-state week of the maintenance run-rate.
type CostBreakdown struct {
	Storage         float64
	Compute         float64
	ChainGas        float64
	Labor           float64
	HeartbeatWeekly float64
}

// Total sums every component.
func (c CostBreakdown) Total() float64 {
	return c.Storage + c.Compute + c.ChainGas + c.Labor + c.HeartbeatWeekly
}

// Distribution summarizes where the plan sits in the property universe.
type Distribution struct {
	StartRank int64
	EndRank   int64
	Remaining int64
}

// TokenSummary is populated in token mode only: the token amount the plan
// consumes and the per-property reward at the range's ends.
type TokenSummary struct {
	Tokens        float64
	RewardAtStart float64
	RewardAtEnd   float64
}

// Result is the immutable outcome of one planning run.
type Result struct {
	Group      string
	Properties int64
	Counties   float64

	Costs        CostBreakdown
	Distribution Distribution
	Heartbeat    simulation.HeartbeatPlan

	Weeks  []simulation.WeekPoint
	Events []simulation.Event

	// Tokens is nil outside token mode.
	Tokens *TokenSummary
}
