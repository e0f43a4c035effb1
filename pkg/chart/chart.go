package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/parcelworks/extraction-planner/pkg/planner"
	"github.com/parcelworks/extraction-planner/pkg/simulation"
)

const (
	chartWidth    = 80
	chartHeight   = 20
	minChartWidth = 20
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Generator renders the planning report as ASCII charts and summaries.
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return NewGeneratorWithWidth(chartWidth)
}

// NewGeneratorWithWidth creates a report generator with a custom chart
// width, clamped to the narrowest usable layout.
func NewGeneratorWithWidth(width int) *Generator {
	if width < minChartWidth {
		width = minChartWidth
	}
	return &Generator{
		width:  width,
		height: chartHeight,
	}
}

func (g *Generator) header(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")
}

// GenerateWorkforceChart draws the weekly active-worker ramp with the
// heartbeat crew overlaid, scaled to the chart height.
func (g *Generator) GenerateWorkforceChart(weeks []simulation.WeekPoint) string {
	var sb strings.Builder
	g.header(&sb, "Workforce Over Time")

	if len(weeks) == 0 {
		sb.WriteString("No staffing required\n")
		return sb.String()
	}

	maxWorkers := 0.0
	for _, wp := range weeks {
		total := wp.ActiveWorkers + float64(wp.Heartbeat)
		if total > maxWorkers {
			maxWorkers = total
		}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	plotWidth := g.width - 7
	perRow := maxWorkers / float64(g.height)

	// Build the chart from top to bottom; each column samples one week.
	for row := g.height; row >= 1; row-- {
		threshold := float64(row-1) * perRow

		sb.WriteString(fmt.Sprintf("%5.0f |", float64(row)*perRow))
		for x := 0; x < plotWidth; x++ {
			pointIndex := int(float64(x) / float64(plotWidth) * float64(len(weeks)))
			if pointIndex >= len(weeks) {
				pointIndex = len(weeks) - 1
			}
			wp := weeks[pointIndex]

			switch {
			case float64(wp.Heartbeat) > threshold:
				sb.WriteString("#")
			case wp.ActiveWorkers+float64(wp.Heartbeat) > threshold:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("      +")
	sb.WriteString(strings.Repeat("-", plotWidth))
	sb.WriteString("\n")

	// Week markers along the axis.
	labelLine := make([]rune, plotWidth)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	step := len(weeks) / 8
	if step < 1 {
		step = 1
	}
	for week := 0; week < len(weeks); week += step {
		position := int(float64(week) / float64(len(weeks)) * float64(plotWidth))
		marker := fmt.Sprintf("w%d", week)
		if position+len(marker) <= plotWidth {
			for i, ch := range marker {
				labelLine[position+i] = ch
			}
		}
	}
	sb.WriteString("       ")
	sb.WriteString(string(labelLine))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Extraction workers (weekly average)\n")
	sb.WriteString("    # - Heartbeat maintenance crew\n")

	return sb.String()
}

// GenerateCostBreakdown renders the plan's cost components and totals.
func (g *Generator) GenerateCostBreakdown(result planner.Result) string {
	var sb strings.Builder
	g.header(&sb, "Cost Breakdown")

	sb.WriteString(fmt.Sprintf("Properties planned: %s (%s counties)\n\n",
		humanize.Comma(result.Properties),
		humanize.CommafWithDigits(result.Counties, 1)))

	sb.WriteString(fmt.Sprintf("  Storage         %14s\n", dollars(result.Costs.Storage)))
	sb.WriteString(fmt.Sprintf("  Compute         %14s\n", dollars(result.Costs.Compute)))
	sb.WriteString(fmt.Sprintf("  Chain gas       %14s\n", dollars(result.Costs.ChainGas)))
	sb.WriteString(fmt.Sprintf("  Labor           %14s\n", dollars(result.Costs.Labor)))
	sb.WriteString(fmt.Sprintf("  Heartbeat/week  %14s\n", dollars(result.Costs.HeartbeatWeekly)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("-", 30)))
	sb.WriteString(fmt.Sprintf("  Total           %14s\n", dollars(result.Costs.Total())))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Timeline: %d weeks\n", len(result.Weeks)))
	sb.WriteString(fmt.Sprintf("Heartbeat crew at steady state: %d (%s/week)\n",
		result.Heartbeat.Crew, dollars(result.Heartbeat.WeeklyTotal())))

	return sb.String()
}

// GenerateDistributionSummary renders where the plan sits in the universe,
// plus the token picture in token mode.
func (g *Generator) GenerateDistributionSummary(result planner.Result) string {
	var sb strings.Builder
	g.header(&sb, "Distribution")

	sb.WriteString(fmt.Sprintf("Data group:         %s\n", result.Group))
	sb.WriteString(fmt.Sprintf("Start rank:         %s\n", humanize.Comma(result.Distribution.StartRank)))
	sb.WriteString(fmt.Sprintf("End rank:           %s\n", humanize.Comma(result.Distribution.EndRank)))
	sb.WriteString(fmt.Sprintf("Remaining capacity: %s\n", humanize.Comma(result.Distribution.Remaining)))

	if result.Tokens != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Tokens consumed:    %s\n", humanize.CommafWithDigits(result.Tokens.Tokens, 2)))
		sb.WriteString(fmt.Sprintf("Reward at start:    %s/property\n", humanize.CommafWithDigits(result.Tokens.RewardAtStart, 6)))
		sb.WriteString(fmt.Sprintf("Reward at end:      %s/property\n", humanize.CommafWithDigits(result.Tokens.RewardAtEnd, 6)))
	}

	return sb.String()
}

// GenerateWarnings lists warning events, highlighted.
func (g *Generator) GenerateWarnings(events []simulation.Event) string {
	var sb strings.Builder
	g.header(&sb, "Warnings")

	warnings := 0
	for _, event := range events {
		if !event.IsWarning {
			continue
		}
		warnings++
		sb.WriteString(warningStyle.Render(fmt.Sprintf("[week %3d] %s", event.Week, event.Message)))
		sb.WriteString("\n")
	}

	if warnings == 0 {
		sb.WriteString("No warnings!\n")
	}

	return sb.String()
}

// GenerateTimeline renders the simulation's milestone events.
func (g *Generator) GenerateTimeline(events []simulation.Event, limit int) string {
	var sb strings.Builder

	title := "Timeline"
	if limit > 0 && limit < len(events) {
		title = fmt.Sprintf("Timeline (showing first %d events)", limit)
	}
	g.header(&sb, title)

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		event := events[i]

		typeIcon := " "
		switch event.Type {
		case simulation.EventTypeTierStarted:
			typeIcon = "+"
		case simulation.EventTypeTierCompleted:
			typeIcon = "-"
		case simulation.EventTypeHeartbeatCrew:
			typeIcon = "#"
		case simulation.EventTypeStalled:
			typeIcon = "!"
		}

		sb.WriteString(fmt.Sprintf("[week %3d] %s %s\n", event.Week, typeIcon, event.Message))
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}

	return sb.String()
}

// dollars formats a dollar amount with thousands grouping.
func dollars(v float64) string {
	if v < 0 {
		return "-" + dollars(-v)
	}
	whole := math.Floor(v)
	cents := math.Round((v - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("$%s.%02d", humanize.Comma(int64(whole)), int(cents))
}
