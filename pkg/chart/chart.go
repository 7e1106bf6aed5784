package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sherine-k/queuesim/pkg/simulation"
)

const (
	chartWidth  = 80
	chartHeight = 20
)

// Generator generates ASCII charts
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width:  chartWidth,
		height: chartHeight,
	}
}

// GenerateOccupancyChart generates an ASCII chart of the customers in the
// system across the recorded steps
func (g *Generator) GenerateOccupancyChart(points []simulation.TimePoint) string {
	if len(points) == 0 {
		return "No data to display"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString("Customers In System\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	maxInSystem := 0
	for _, p := range points {
		if n := p.InSystem(); n > maxInSystem {
			maxInSystem = n
		}
	}

	// Each row stands for perRow customers once the peak outgrows the chart
	perRow := 1
	if maxInSystem > g.height {
		perRow = (maxInSystem + g.height - 1) / g.height
	}
	rows := (maxInSystem + perRow - 1) / perRow

	plotWidth := g.width - 6
	if len(points) < plotWidth {
		plotWidth = len(points)
	}

	for row := rows; row >= 1; row-- {
		level := row * perRow
		sb.WriteString(fmt.Sprintf("%3d |", level))

		for x := 0; x < plotWidth; x++ {
			p := points[g.pointIndex(x, plotWidth, len(points))]
			n := p.InSystem()

			switch {
			case n < level-perRow+1:
				sb.WriteString(" ")
			case row == 1:
				// the bottom row always holds the customer in service
				sb.WriteString("█")
			default:
				sb.WriteString("*")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("    +")
	sb.WriteString(strings.Repeat("-", plotWidth))
	sb.WriteString("\n")

	// X-axis labels at both ends of the recorded clock range
	first := "t=" + FormatClock(points[0].Clock)
	last := "t=" + FormatClock(points[len(points)-1].Clock)
	gap := plotWidth - len(first) - len(last)
	sb.WriteString("     ")
	sb.WriteString(first)
	if gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
		sb.WriteString(last)
	}
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Customer in service\n")
	sb.WriteString("    * - Customers waiting\n")
	if perRow > 1 {
		sb.WriteString(fmt.Sprintf("    (each row spans %d customers)\n", perRow))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (g *Generator) pointIndex(x, plotWidth, n int) int {
	if plotWidth <= 1 {
		return 0
	}
	i := int(float64(x) / float64(plotWidth-1) * float64(n-1))
	if i >= n {
		i = n - 1
	}
	return i
}

// GenerateEventSummary generates a summary of the recorded steps and the
// state they left the simulation in
func (g *Generator) GenerateEventSummary(points []simulation.TimePoint, final simulation.TimePoint) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Event Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	eventsByType := make(map[simulation.EventType]int)
	idle := 0
	maxWaiting := 0
	for _, p := range points {
		eventsByType[p.Event]++
		if !p.Busy {
			idle++
		} else if p.Waiting > maxWaiting {
			maxWaiting = p.Waiting
		}
	}

	sb.WriteString(fmt.Sprintf("Total Steps: %d\n", len(points)))
	sb.WriteString(fmt.Sprintf("  - Arrivals: %d\n", eventsByType[simulation.EventTypeArrival]))
	sb.WriteString(fmt.Sprintf("  - Departures: %d\n", eventsByType[simulation.EventTypeDeparture]))
	sb.WriteString(fmt.Sprintf("  - Idle Observations: %d\n", idle))
	sb.WriteString(fmt.Sprintf("  - Max Waiting: %d\n", maxWaiting))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final Clock: %s\n", FormatClock(final.Clock)))
	sb.WriteString(fmt.Sprintf("Final Count: %d\n", final.Departures))
	sb.WriteString(fmt.Sprintf("Final Waiting: %s\n", FormatWaiting(final)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatClock formats a simulated time in its shortest exact decimal form
func FormatClock(clock float64) string {
	return strconv.FormatFloat(clock, 'f', -1, 64)
}

// FormatWaiting formats the waiting count of p, or None when the server is idle
func FormatWaiting(p simulation.TimePoint) string {
	if !p.Busy {
		return "None"
	}
	return strconv.Itoa(p.Waiting)
}
