package planner

import (
	"github.com/parcelworks/extraction-planner/pkg/config"
	"github.com/parcelworks/extraction-planner/pkg/simulation"
	"github.com/parcelworks/extraction-planner/pkg/tokenomics"
)

// usdIterations bounds the budget bisection. The search space is at most
// the property universe, so the cap is far past convergence.
const usdIterations = 60

// Engine turns a validated Options record into a Result: it resolves the
// requested quantity (solving token or USD budgets first), clamps it to the
// remaining universe, partitions it across tiers, runs the workforce
// simulation and heartbeat model, and assembles the cost and distribution
// picture. One emission curve per data group is solved at construction.
type Engine struct {
	cfg    *config.Config
	curves map[string]*tokenomics.Curve
}

// New builds an engine over an immutable configuration.
func New(cfg *config.Config) *Engine {
	curves := make(map[string]*tokenomics.Curve, len(cfg.Groups))
	for _, group := range cfg.Groups {
		curves[group.Name] = tokenomics.NewCurve(
			cfg.Tokenomics.TotalSupply*group.Share,
			config.TotalProperties,
			cfg.Tokenomics.MinLastReward,
		)
	}

	return &Engine{cfg: cfg, curves: curves}
}

// Curve returns the emission curve for a data group, falling back to the
// catalog's first group when the name is unknown. The engine clamps bad
// input; rejection happens in the CLI layer.
func (e *Engine) Curve(group string) *tokenomics.Curve {
	if curve, ok := e.curves[group]; ok {
		return curve
	}
	return e.curves[e.cfg.Groups[0].Name]
}

// Plan runs one deterministic planning computation.
func (e *Engine) Plan(opts Options) Result {
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > config.TotalProperties {
		offset = config.TotalProperties
	}
	remaining := config.TotalProperties - offset

	curve := e.Curve(opts.Group)

	var quantity int64
	switch opts.Mode {
	case ModeTokens:
		quantity = curve.PropertiesForTokens(opts.Tokens, offset)
	case ModeUSD:
		quantity = e.propertiesForBudget(opts, offset, remaining)
	default:
		quantity = opts.Properties
	}

	if quantity < 0 {
		quantity = 0
	}
	if quantity > remaining {
		quantity = remaining
	}

	return e.assemble(opts, offset, quantity, curve)
}

// assemble builds the full Result for a resolved, clamped quantity.
func (e *Engine) assemble(opts Options, offset, quantity int64, curve *tokenomics.Curve) Result {
	workloads := simulation.BuildWorkloads(e.cfg.Tiers, offset, quantity)
	sim := simulation.NewSimulator(e.cfg, workloads, opts.MaxWorkers, opts.HiresPerWeek)
	simResult := sim.Run()

	heartbeat := simulation.PlanHeartbeat(quantity, e.cfg.Rates)

	count := float64(quantity)
	rates := e.cfg.Rates
	costs := CostBreakdown{
		Storage:         count * rates.StoragePerProperty,
		Compute:         count * rates.ComputePerProperty,
		ChainGas:        count * rates.ChainGasPerProperty,
		Labor:           simResult.LaborCost,
		HeartbeatWeekly: heartbeat.WeeklyTotal(),
	}

	result := Result{
		Group:      opts.Group,
		Properties: quantity,
		Counties:   simResult.FractionalCounties,
		Costs:      costs,
		Distribution: Distribution{
			StartRank: offset,
			EndRank:   offset + quantity,
			Remaining: config.TotalProperties - offset - quantity,
		},
		Heartbeat: heartbeat,
		Weeks:     simResult.Weeks,
		Events:    simResult.Events,
	}

	if opts.Mode == ModeTokens {
		summary := &TokenSummary{
			Tokens: curve.CumulativeReward(offset, quantity),
		}
		if quantity > 0 {
			summary.RewardAtStart = curve.RewardAt(offset)
			summary.RewardAtEnd = curve.RewardAt(offset + quantity - 1)
		}
		result.Tokens = summary
	}

	return result
}

// propertiesForBudget finds the largest property count whose full plan cost
// fits a USD budget, by integer bisection over the deterministic plan. The
// plan cost is strictly increasing in count, so the bracket invariant
// cost(lo) <= budget < cost(hi) holds throughout.
func (e *Engine) propertiesForBudget(opts Options, offset, remaining int64) int64 {
	if opts.USD <= 0 || remaining <= 0 {
		return 0
	}

	cost := func(n int64) float64 {
		return e.assemble(opts, offset, n, nil).Costs.Total()
	}

	if cost(remaining) <= opts.USD {
		return remaining
	}

	lo, hi := int64(0), remaining
	for i := 0; i < usdIterations && hi-lo > 1; i++ {
		mid := lo + (hi-lo)/2
		if cost(mid) <= opts.USD {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
