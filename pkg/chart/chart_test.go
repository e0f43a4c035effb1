package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelworks/extraction-planner/pkg/config"
	"github.com/parcelworks/extraction-planner/pkg/planner"
)

func testResult(t *testing.T, opts planner.Options) planner.Result {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return planner.New(cfg).Plan(opts)
}

func TestWorkforceChartRenders(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:       planner.ModeProperties,
		Properties: 600_000,
		Group:      "deeds",
	})

	gen := NewGenerator()
	out := gen.GenerateWorkforceChart(result.Weeks)

	assert.Contains(t, out, "Workforce Over Time")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "Heartbeat maintenance crew")
}

func TestWorkforceChartEmptySeries(t *testing.T) {
	gen := NewGenerator()
	out := gen.GenerateWorkforceChart(nil)
	assert.Contains(t, out, "No staffing required")
}

func TestCostBreakdownRenders(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:       planner.ModeProperties,
		Properties: 600_000,
		Group:      "deeds",
	})

	gen := NewGenerator()
	out := gen.GenerateCostBreakdown(result)

	assert.Contains(t, out, "Properties planned: 600,000")
	assert.Contains(t, out, "Storage")
	assert.Contains(t, out, "Chain gas")
	assert.Contains(t, out, "$")
}

func TestDistributionSummaryTokenMode(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:   planner.ModeTokens,
		Tokens: 500_000,
		Group:  "deeds",
	})

	gen := NewGenerator()
	out := gen.GenerateDistributionSummary(result)

	assert.Contains(t, out, "Start rank:")
	assert.Contains(t, out, "Tokens consumed:")
	assert.Contains(t, out, "Reward at start:")
}

func TestTimelineAndWarnings(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:       planner.ModeProperties,
		Properties: 600_000,
		Group:      "deeds",
	})

	gen := NewGenerator()

	timeline := gen.GenerateTimeline(result.Events, 2)
	assert.Contains(t, timeline, "showing first 2 events")
	assert.Contains(t, timeline, "Tier 'bulk-access' started")
	assert.Contains(t, timeline, "more events")

	warnings := gen.GenerateWarnings(result.Events)
	assert.Contains(t, warnings, "No warnings!")
}

func TestDollarsFormatting(t *testing.T) {
	assert.Equal(t, "$0.00", dollars(0))
	assert.Equal(t, "$1,234.50", dollars(1234.5))
	assert.Equal(t, "$2.00", dollars(1.999))
	assert.Equal(t, "-$10.25", dollars(-10.25))
}

func TestGeneratorCustomWidth(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:       planner.ModeProperties,
		Properties: 600_000,
		Group:      "deeds",
	})

	gen := NewGeneratorWithWidth(120)
	for _, line := range strings.Split(gen.GenerateWorkforceChart(result.Weeks), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 121)
	}

	// Unusably narrow widths clamp instead of breaking the layout.
	narrow := NewGeneratorWithWidth(5)
	assert.Equal(t, minChartWidth, narrow.width)
}

func TestChartLinesStayWithinWidth(t *testing.T) {
	result := testResult(t, planner.Options{
		Mode:       planner.ModeProperties,
		Properties: 3_000_000,
		Group:      "deeds",
	})

	gen := NewGenerator()
	for _, line := range strings.Split(gen.GenerateWorkforceChart(result.Weeks), "\n") {
		require.LessOrEqual(t, len([]rune(line)), chartWidth+1)
	}
}
