package simulation

import (
	"math"

	"github.com/parcelworks/extraction-planner/pkg/config"
)

// pipeline is the per-tier stage-bucket shift register. Bucket i holds the
// number of workers i ticks into the tier's train-then-produce cycle; every
// tick the buckets shift forward by one and the last bucket's occupants
// complete a county. Tracking counts instead of workers keeps a tick
// O(stage length) regardless of headcount.
type pipeline struct {
	stages        []int
	trainingTicks int

	countiesStarted     int
	countiesCompleted   int
	propertiesCompleted float64
}

func newPipeline(tier config.Tier, ticksPerWeek int) *pipeline {
	trainingTicks := int(math.Round(tier.TrainingWeeks * float64(ticksPerWeek)))
	productionTicks := int(math.Round(tier.ProductionWeeks * float64(ticksPerWeek)))

	return &pipeline{
		stages:        make([]int, trainingTicks+productionTicks),
		trainingTicks: trainingTicks,
	}
}

// start places n workers into the first bucket, each claiming one county.
func (p *pipeline) start(n int) {
	if n <= 0 {
		return
	}
	p.stages[0] += n
	p.countiesStarted += n
}

// occupancy is the number of workers anywhere in the cycle.
func (p *pipeline) occupancy() int {
	total := 0
	for _, n := range p.stages {
		total += n
	}
	return total
}

// producing is the number of workers past the training offset. Only these
// accrue labor cost.
func (p *pipeline) producing() int {
	total := 0
	for i := p.trainingTicks; i < len(p.stages); i++ {
		total += p.stages[i]
	}
	return total
}

// advance shifts every bucket forward one tick and returns the workers that
// fell off the end, i.e. completed a full cycle this tick.
func (p *pipeline) advance() int {
	last := len(p.stages) - 1
	completers := p.stages[last]
	copy(p.stages[1:], p.stages[:last])
	p.stages[0] = 0
	return completers
}

// complete credits n finished counties against the workload, capping the
// property tally at the tier's assignment so a partial final county only
// counts its remainder.
func (p *pipeline) complete(n int, workload Workload) {
	p.countiesCompleted += n
	p.propertiesCompleted += float64(n) * workload.Tier.PropertiesPerCounty()
	if p.propertiesCompleted > float64(workload.Properties) {
		p.propertiesCompleted = float64(workload.Properties)
	}
}

// done reports whether the tier's work has fully drained: every county
// complete and nobody left in flight.
func (p *pipeline) done(workload Workload) bool {
	return p.countiesCompleted >= workload.CountiesNeeded && p.occupancy() == 0
}
