package simulation

import "github.com/parcelworks/extraction-planner/pkg/config"

// HeartbeatPlan is the steady-state maintenance picture once extraction
// finishes: crew size and the weekly run-rate, split by component. The
// simulator's in-flight heartbeat diversion ramps toward the same crew.
type HeartbeatPlan struct {
	Crew          int
	WeeklyLabor   float64
	WeeklyCompute float64
	WeeklyGas     float64
}

// WeeklyTotal is the combined weekly run-rate.
func (h HeartbeatPlan) WeeklyTotal() float64 {
	return h.WeeklyLabor + h.WeeklyCompute + h.WeeklyGas
}

// PlanHeartbeat sizes the maintenance crew for a finished property count and
// prices its weekly run-rate from the rate table.
func PlanHeartbeat(properties int64, rates config.Rates) HeartbeatPlan {
	crew := maintainersFor(float64(properties), rates.PropertiesPerMaintainer)

	return HeartbeatPlan{
		Crew:          crew,
		WeeklyLabor:   float64(crew) * rates.LaborPerPersonWeekly,
		WeeklyCompute: float64(properties) * rates.HeartbeatComputePerPropertyWeekly,
		WeeklyGas:     float64(properties) * rates.HeartbeatGasPerPropertyWeekly,
	}
}
