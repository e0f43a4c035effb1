package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/parcelworks/extraction-planner/pkg/chart"
	"github.com/parcelworks/extraction-planner/pkg/config"
	"github.com/parcelworks/extraction-planner/pkg/planner"
)

var (
	configFile    string
	properties    int64
	tokens        float64
	usd           float64
	group         string
	offset        int64
	maxWorkers    int64
	hiresPerWeek  int
	showTimeline  bool
	timelineLimit int
	chartWidth    int
)

// newRootCmd builds a fresh root command; flag state does not leak between
// invocations.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Extraction Planning Engine",
		Long: `A CLI tool that plans a staged property-data extraction.

Given a target quantity (a property count, a token budget, or a USD budget),
it projects monetary cost by component, a week-by-week staffing timeline,
and, in token mode, the reward a property range earns under the decaying
emission curve.`,
		RunE: runPlan,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration overlay file (built-in defaults when empty)")
	rootCmd.Flags().Int64VarP(&properties, "properties", "p", 0, "Quantity as a property count")
	rootCmd.Flags().Float64VarP(&tokens, "tokens", "k", 0, "Quantity as a token budget")
	rootCmd.Flags().Float64VarP(&usd, "usd", "u", 0, "Quantity as a USD budget")
	rootCmd.Flags().StringVarP(&group, "group", "g", "deeds", "Data group")
	rootCmd.Flags().Int64VarP(&offset, "offset", "o", 0, "Properties already extracted before this run")
	rootCmd.Flags().Int64VarP(&maxWorkers, "max-workers", "m", 0, "Maximum lifetime worker count (0 = unbounded)")
	rootCmd.Flags().IntVarP(&hiresPerWeek, "hires-per-week", "r", 0, "Override for new hires per week (0 = configured rate)")
	rootCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show the simulation milestone timeline")
	rootCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline events to display")
	rootCmd.Flags().IntVarP(&chartWidth, "chart-width", "w", 80, "Width of the report charts in columns")

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}

	if chartWidth < 20 {
		return fmt.Errorf("chart-width must be at least 20")
	}

	slog.Info("configuration loaded",
		"tiers", len(cfg.Tiers),
		"counties", cfg.TotalCounties(),
		"properties", cfg.TotalTierProperties(),
		"group", opts.Group,
	)

	engine := planner.New(cfg)
	result := engine.Plan(opts)

	slog.Info("plan computed",
		"mode", string(opts.Mode),
		"properties", result.Properties,
		"weeks", len(result.Weeks),
		"total_cost", result.Costs.Total(),
	)

	gen := chart.NewGeneratorWithWidth(chartWidth)

	fmt.Println(gen.GenerateWorkforceChart(result.Weeks))
	fmt.Println(gen.GenerateCostBreakdown(result))
	fmt.Println(gen.GenerateDistributionSummary(result))
	fmt.Println(gen.GenerateWarnings(result.Events))

	if showTimeline {
		fmt.Println(gen.GenerateTimeline(result.Events, timelineLimit))
	}

	return nil
}

// buildOptions validates the flag set into the engine's Options record. All
// policy validation lives here; the engine itself clamps instead of
// rejecting.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (planner.Options, error) {
	var opts planner.Options

	modes := 0
	if cmd.Flags().Changed("properties") {
		modes++
		opts.Mode = planner.ModeProperties
		opts.Properties = properties
	}
	if cmd.Flags().Changed("tokens") {
		modes++
		opts.Mode = planner.ModeTokens
		opts.Tokens = tokens
	}
	if cmd.Flags().Changed("usd") {
		modes++
		opts.Mode = planner.ModeUSD
		opts.USD = usd
	}
	if modes != 1 {
		return opts, fmt.Errorf("exactly one of --properties, --tokens or --usd must be set")
	}

	if opts.Properties < 0 {
		return opts, fmt.Errorf("properties must not be negative")
	}
	if opts.Tokens < 0 {
		return opts, fmt.Errorf("tokens must not be negative")
	}
	if opts.USD < 0 {
		return opts, fmt.Errorf("usd must not be negative")
	}

	if _, ok := cfg.Group(group); !ok {
		return opts, fmt.Errorf("unknown data group %q", group)
	}
	opts.Group = group

	if offset < 0 {
		return opts, fmt.Errorf("offset must not be negative")
	}
	opts.Offset = offset

	if maxWorkers < 0 {
		return opts, fmt.Errorf("max-workers must not be negative")
	}
	opts.MaxWorkers = maxWorkers

	if hiresPerWeek < 0 {
		return opts, fmt.Errorf("hires-per-week must not be negative")
	}
	opts.HiresPerWeek = hiresPerWeek

	return opts, nil
}
