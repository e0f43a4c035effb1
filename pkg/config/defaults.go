package config

// Default returns the built-in configuration: the shipped tier catalog,
// rate table, tokenomics parameters and data groups. Callers get a fresh
// value each time so one plan's overrides never leak into another.
func Default() *Config {
	return &Config{
		TicksPerWeek: 6,
		Tiers: []Tier{
			{
				ID:              1,
				Label:           "bulk-access",
				Properties:      60_000_000,
				Counties:        1000,
				TrainingWeeks:   2,
				ProductionWeeks: 4,
			},
			{
				ID:              2,
				Label:           "portal-scrape",
				Properties:      50_000_000,
				Counties:        900,
				TrainingWeeks:   3,
				ProductionWeeks: 6,
			},
			{
				ID:              3,
				Label:           "manual-request",
				Properties:      40_000_000,
				Counties:        750,
				TrainingWeeks:   4,
				ProductionWeeks: 8,
			},
		},
		Rates: Rates{
			StoragePerProperty:  0.00004,
			ComputePerProperty:  0.00011,
			ChainGasPerProperty: 0.00025,

			LaborPerPersonWeekly: 600,
			NewHiresPerWeek:      10,

			PropertiesPerMaintainer:           5_000_000,
			HeartbeatComputePerPropertyWeekly: 0.0000002,
			HeartbeatGasPerPropertyWeekly:     0.0000001,
		},
		Tokenomics: Tokenomics{
			TotalSupply:   1_000_000_000,
			MinLastReward: 0.05,
		},
		Groups: []DataGroup{
			{Name: "deeds", Share: 0.50},
			{Name: "liens", Share: 0.20},
			{Name: "permits", Share: 0.15},
			{Name: "assessments", Share: 0.15},
		},
	}
}
