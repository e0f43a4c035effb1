package simulation

import (
	"math"

	"github.com/parcelworks/extraction-planner/pkg/config"
)

// countyEpsilon absorbs floating-point noise in the properties/county
// division before the ceiling, so a mathematically whole county count is
// never inflated by one.
const countyEpsilon = 1e-9

// Workload is one tier's slice of a plan: the properties assigned to the
// tier for this run and the county count needed to extract them. Immutable
// once built.
type Workload struct {
	Tier               config.Tier
	Properties         int64
	FractionalCounties float64
	CountiesNeeded     int
}

func newWorkload(tier config.Tier, properties int64) Workload {
	fractional := float64(properties) / tier.PropertiesPerCounty()
	return Workload{
		Tier:               tier,
		Properties:         properties,
		FractionalCounties: fractional,
		CountiesNeeded:     int(math.Ceil(fractional - countyEpsilon)),
	}
}

// BuildWorkloads partitions a contiguous property range [offset,
// offset+quantity) across the tier catalog in catalog order. The offset
// consumes earlier tiers first, so each tier's workload reflects its own
// already-extracted share. Tiers that receive no properties get a zero
// workload; the simulator skips those.
func BuildWorkloads(tiers []config.Tier, offset, quantity int64) []Workload {
	workloads := make([]Workload, 0, len(tiers))

	var tierStart int64
	for _, tier := range tiers {
		tierEnd := tierStart + tier.Properties

		from := max64(offset, tierStart)
		to := min64(offset+quantity, tierEnd)

		var assigned int64
		if to > from {
			assigned = to - from
		}
		workloads = append(workloads, newWorkload(tier, assigned))

		tierStart = tierEnd
	}

	return workloads
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
