package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the planner configuration. With an empty filename the
// built-in defaults are used; otherwise the file's values are overlaid on
// the defaults, so a config file only needs to name what it changes.
func Load(filename string) (*Config, error) {
	config := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.TicksPerWeek <= 0 {
		return fmt.Errorf("ticksPerWeek must be greater than 0")
	}

	if len(config.Tiers) == 0 {
		return fmt.Errorf("at least one tier must be defined")
	}

	for i, tier := range config.Tiers {
		if tier.Label == "" {
			return fmt.Errorf("tier %d: label is required", i)
		}

		if tier.Properties <= 0 {
			return fmt.Errorf("tier %s: properties must be greater than 0", tier.Label)
		}

		if tier.Counties <= 0 {
			return fmt.Errorf("tier %s: counties must be greater than 0", tier.Label)
		}

		if tier.TrainingWeeks < 0 {
			return fmt.Errorf("tier %s: trainingWeeks must not be negative", tier.Label)
		}

		if tier.ProductionWeeks <= 0 {
			return fmt.Errorf("tier %s: productionWeeks must be greater than 0", tier.Label)
		}

		// The pipeline is sized in whole ticks; phases that round away to
		// nothing would leave it empty.
		ticks := int(math.Round(tier.TrainingWeeks*float64(config.TicksPerWeek))) +
			int(math.Round(tier.ProductionWeeks*float64(config.TicksPerWeek)))
		if ticks < 1 {
			return fmt.Errorf("tier %s: training and production phases round to zero ticks at %d ticks per week", tier.Label, config.TicksPerWeek)
		}
	}

	if total := config.TotalTierProperties(); total != TotalProperties {
		return fmt.Errorf("tier properties sum to %d, want %d", total, TotalProperties)
	}

	if config.Rates.LaborPerPersonWeekly <= 0 {
		return fmt.Errorf("laborPerPersonWeekly must be greater than 0")
	}

	if config.Rates.NewHiresPerWeek <= 0 {
		return fmt.Errorf("newHiresPerWeek must be greater than 0")
	}

	if config.Rates.PropertiesPerMaintainer <= 0 {
		return fmt.Errorf("propertiesPerMaintainer must be greater than 0")
	}

	if config.Tokenomics.TotalSupply <= 0 {
		return fmt.Errorf("totalSupply must be greater than 0")
	}

	if config.Tokenomics.MinLastReward <= 0 {
		return fmt.Errorf("minLastReward must be greater than 0")
	}

	if len(config.Groups) == 0 {
		return fmt.Errorf("at least one data group must be defined")
	}

	for _, group := range config.Groups {
		if group.Name == "" {
			return fmt.Errorf("data group name is required")
		}

		if group.Share <= 0 || group.Share > 1 {
			return fmt.Errorf("data group %s: share must be in (0, 1]", group.Name)
		}
	}

	return nil
}
