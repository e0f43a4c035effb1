package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelworks/extraction-planner/pkg/config"
)

func runSim(t *testing.T, cfg *config.Config, quantity int64, maxWorkers int64) Result {
	t.Helper()
	workloads := BuildWorkloads(cfg.Tiers, 0, quantity)
	return NewSimulator(cfg, workloads, maxWorkers, 0).Run()
}

func TestSingleCountyTimelineAndCost(t *testing.T) {
	cfg := config.Default()

	// One tier-1 county: one hire, 2 weeks unpaid training, 4 weeks paid
	// production at $600/week.
	res := runSim(t, cfg, 60_000, 0)

	assert.Equal(t, 2400.0, res.LaborCost)
	assert.Equal(t, 1, res.CountiesCompleted)
	assert.Equal(t, 1, res.FinalHeartbeat)
	require.Len(t, res.Weeks, 6)
	assert.Equal(t, 0, res.Weeks[0].Heartbeat)
	assert.Equal(t, 1, res.Weeks[len(res.Weeks)-1].Heartbeat)
}

func TestTenMillionPropertyScenario(t *testing.T) {
	cfg := config.Default()

	res := runSim(t, cfg, 10_000_000, 0)

	// ceil(10,000,000 / 5,000,000) maintainers by the final week.
	assert.Equal(t, 2, res.FinalHeartbeat)
	require.NotEmpty(t, res.Weeks)
	assert.Equal(t, 2, res.Weeks[len(res.Weeks)-1].Heartbeat)

	// ceil(10,000,000 / 60,000) counties, all completed.
	assert.Equal(t, 167, res.CountiesCompleted)

	plan := PlanHeartbeat(10_000_000, cfg.Rates)
	assert.Equal(t, 2, plan.Crew)
	assert.Equal(t, 2*cfg.Rates.LaborPerPersonWeekly, plan.WeeklyLabor)
}

func TestHeartbeatSeriesMonotonic(t *testing.T) {
	cfg := config.Default()

	res := runSim(t, cfg, 10_000_000, 0)

	prev := 0
	for _, wp := range res.Weeks {
		require.GreaterOrEqual(t, wp.Heartbeat, prev, "week %d", wp.Week)
		prev = wp.Heartbeat
	}
}

func TestWeeklyRampBoundedAndUnimodal(t *testing.T) {
	cfg := config.Default()

	res := runSim(t, cfg, 10_000_000, 0)
	require.NotEmpty(t, res.Weeks)

	// The tier 1 pipeline is 36 buckets long; at 10 hires/week the
	// workforce stays under onboarding rate x pipeline length.
	stageTicks := (cfg.Tiers[0].TrainingWeeks + cfg.Tiers[0].ProductionWeeks) * float64(cfg.TicksPerWeek)
	bound := float64(cfg.Rates.NewHiresPerWeek) * stageTicks
	for _, wp := range res.Weeks {
		require.LessOrEqual(t, wp.ActiveWorkers, bound, "week %d", wp.Week)
	}

	// Ramp up, then drain: non-decreasing to the peak, non-increasing after.
	peak := 0
	for i, wp := range res.Weeks {
		if wp.ActiveWorkers > res.Weeks[peak].ActiveWorkers {
			peak = i
		}
	}
	for i := 1; i <= peak; i++ {
		require.GreaterOrEqual(t, res.Weeks[i].ActiveWorkers, res.Weeks[i-1].ActiveWorkers, "week %d rising", i)
	}
	for i := peak + 1; i < len(res.Weeks); i++ {
		require.LessOrEqual(t, res.Weeks[i].ActiveWorkers, res.Weeks[i-1].ActiveWorkers, "week %d draining", i)
	}
}

func TestWorkerCapStillCompletes(t *testing.T) {
	cfg := config.Default()

	// 10 counties, at most 2 lifetime workers: they recycle until done.
	res := runSim(t, cfg, 600_000, 2)

	assert.Equal(t, 10, res.CountiesCompleted)
	for _, wp := range res.Weeks {
		require.LessOrEqual(t, wp.ActiveWorkers, 2.0, "week %d", wp.Week)
	}
	for _, event := range res.Events {
		assert.NotEqual(t, EventTypeStalled, event.Type)
	}
}

func TestZeroQuantityProducesNothing(t *testing.T) {
	cfg := config.Default()

	res := runSim(t, cfg, 0, 0)

	assert.Empty(t, res.Weeks)
	assert.Empty(t, res.Events)
	assert.Equal(t, 0.0, res.LaborCost)
	assert.Equal(t, 0, res.FinalHeartbeat)
}

func TestTiersDrainInOrder(t *testing.T) {
	cfg := config.Default()

	// Crosses the tier 1/2 boundary by one county on each side.
	workloads := BuildWorkloads(cfg.Tiers, 59_940_000, 120_000)
	res := NewSimulator(cfg, workloads, 0, 0).Run()

	var labels []string
	for _, event := range res.Events {
		if event.Type == EventTypeTierStarted || event.Type == EventTypeTierCompleted {
			labels = append(labels, string(event.Type)+":"+event.TierLabel)
		}
	}
	assert.Equal(t, []string{
		"tier-started:bulk-access",
		"tier-completed:bulk-access",
		"tier-started:portal-scrape",
		"tier-completed:portal-scrape",
	}, labels)
}

func TestSimulationDeterminism(t *testing.T) {
	cfg := config.Default()

	first := runSim(t, cfg, 3_000_000, 50)
	second := runSim(t, cfg, 3_000_000, 50)

	require.Equal(t, first, second)
}

func TestMaintainersFor(t *testing.T) {
	assert.Equal(t, 0, maintainersFor(0, 5_000_000))
	assert.Equal(t, 1, maintainersFor(1, 5_000_000))
	assert.Equal(t, 1, maintainersFor(5_000_000, 5_000_000))
	assert.Equal(t, 2, maintainersFor(5_000_001, 5_000_000))
}
