package config

// TotalProperties is the size of the property universe the planner operates
// over. The tier catalog must partition exactly this many properties.
const TotalProperties int64 = 150_000_000

// Tier is one availability band of the property universe. Counties in the
// same tier share a pace: workers spend TrainingWeeks learning the tier's
// access path, then ProductionWeeks extracting one county.
type Tier struct {
	ID              int     `yaml:"id"`
	Label           string  `yaml:"label"`
	Properties      int64   `yaml:"properties"`
	Counties        int     `yaml:"counties"`
	TrainingWeeks   float64 `yaml:"trainingWeeks"`
	ProductionWeeks float64 `yaml:"productionWeeks"`
}

// PropertiesPerCounty returns the tier's average county size.
func (t Tier) PropertiesPerCounty() float64 {
	return float64(t.Properties) / float64(t.Counties)
}

// Rates holds every per-unit dollar rate and staffing constant used by the
// planner. Flat rates are one-time per property; heartbeat rates are weekly
// run-rates for the post-extraction maintenance crew.
type Rates struct {
	StoragePerProperty  float64 `yaml:"storagePerProperty"`
	ComputePerProperty  float64 `yaml:"computePerProperty"`
	ChainGasPerProperty float64 `yaml:"chainGasPerProperty"`

	LaborPerPersonWeekly float64 `yaml:"laborPerPersonWeekly"`
	NewHiresPerWeek      int     `yaml:"newHiresPerWeek"`

	PropertiesPerMaintainer           int64   `yaml:"propertiesPerMaintainer"`
	HeartbeatComputePerPropertyWeekly float64 `yaml:"heartbeatComputePerPropertyWeekly"`
	HeartbeatGasPerPropertyWeekly     float64 `yaml:"heartbeatGasPerPropertyWeekly"`
}

// FlatPerProperty returns the one-time per-property cost (storage, compute
// and chain gas combined).
func (r Rates) FlatPerProperty() float64 {
	return r.StoragePerProperty + r.ComputePerProperty + r.ChainGasPerProperty
}

// Tokenomics parameterizes the decaying emission curve: a fixed supply is
// distributed over the whole universe so that the last property still earns
// at least MinLastReward tokens.
type Tokenomics struct {
	TotalSupply   float64 `yaml:"totalSupply"`
	MinLastReward float64 `yaml:"minLastReward"`
}

// DataGroup is one extraction data set (deeds, liens, ...). Its share scales
// the token supply available to that group's emission curve; nothing else in
// the planner reads the selector.
type DataGroup struct {
	Name  string  `yaml:"name"`
	Share float64 `yaml:"share"`
}

// Config is the full static configuration: tier catalog, rate table, token
// parameters and data groups. It is immutable once loaded and passed
// explicitly into the engine, so independent plans never share state.
type Config struct {
	TicksPerWeek int         `yaml:"ticksPerWeek"`
	Tiers        []Tier      `yaml:"tiers"`
	Rates        Rates       `yaml:"rates"`
	Tokenomics   Tokenomics  `yaml:"tokenomics"`
	Groups       []DataGroup `yaml:"groups"`
}

// TotalTierProperties sums the catalog's property counts.
func (c *Config) TotalTierProperties() int64 {
	var total int64
	for _, t := range c.Tiers {
		total += t.Properties
	}
	return total
}

// TotalCounties sums the catalog's county counts.
func (c *Config) TotalCounties() int {
	total := 0
	for _, t := range c.Tiers {
		total += t.Counties
	}
	return total
}

// Group looks up a data group by name.
func (c *Config) Group(name string) (DataGroup, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return DataGroup{}, false
}
