package planner

// QuantityMode says how a plan's size was expressed.
type QuantityMode string

const (
	ModeProperties QuantityMode = "properties"
	ModeTokens     QuantityMode = "tokens"
	ModeUSD        QuantityMode = "usd"
)

// Options is the validated request record handed to the engine by the CLI
// layer. Exactly one quantity field is meaningful, selected by Mode; the
// engine trusts the CLI's validation and clamps rather than rejects.
type Options struct {
	Mode       QuantityMode
	Properties int64
	Tokens     float64
	USD        float64

	// Group selects the data group whose tokenomics share applies.
	Group string

	// Offset is the number of properties already extracted before this run.
	Offset int64

	// MaxWorkers caps lifetime hires; 0 means unbounded.
	MaxWorkers int64

	// HiresPerWeek overrides the configured onboarding rate; 0 keeps it.
	HiresPerWeek int
}
