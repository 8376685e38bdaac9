package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

const unassigned = "(unassigned)"

type ResolvedBy int

const (
	ResolvedByMonth ResolvedBy = iota
	ResolvedByEngineer
)

type ResolvedOptions struct {
	By        ResolvedBy
	Mode      BarMode
	Year      int
	Engineers []string
}

// ComputeResolvedCells counts resolved tickets per (month, engineer)
// pair. By selects which of the two becomes the row axis. Tickets that
// were never closed, or whose closer is unknown, do not count.
func ComputeResolvedCells(tickets []*model.Ticket, opts *ResolvedOptions) []Cell {
	if opts == nil {
		opts = &ResolvedOptions{}
	}

	var result []Cell

	for _, t := range tickets {
		if !t.IsResolved() {
			continue
		}
		if opts.Year != 0 && t.ClosedAt.Year() != opts.Year {
			continue
		}
		if len(opts.Engineers) > 0 && !lo.Contains(opts.Engineers, t.ClosedBy) {
			continue
		}

		month := t.ResolvedMonth()

		cell := Cell{Row: month, Col: t.ClosedBy, Value: 1}
		if opts.By == ResolvedByEngineer {
			cell.Row, cell.Col = cell.Col, cell.Row
		}

		result = append(result, cell)
	}

	return result
}

// NewResolvedPlot builds the resolved items bar chart. Rows and columns
// are both sorted, so months stay chronological and colors stay stable
// between runs.
func NewResolvedPlot(tickets []*model.Ticket, opts *ResolvedOptions) *BarPlot {
	if opts == nil {
		opts = &ResolvedOptions{}
	}

	cells := ComputeResolvedCells(tickets, opts)
	grid := NewPivotGrid(cells, OrderSorted, OrderSorted)

	plot := NewBarPlotFromGrid(grid, opts.Mode)
	plot.YLabel = "Number of Resolved Items"

	switch {
	case opts.By == ResolvedByEngineer:
		plot.Title = "Resolved Items Per Engineer by Month (Grouped)"
		plot.XLabel = "Engineer"
		plot.LegendTitle = "Month"

	case opts.Mode == BarsGrouped:
		plot.Title = "Resolved Items Per Month by Engineer (Grouped)"
		plot.XLabel = "Month"
		plot.LegendTitle = "Engineer"

	default:
		plot.Title = "Resolved Items Per Month by Engineer"
		if opts.Year != 0 {
			plot.Title += fmt.Sprintf(" (%v)", opts.Year)
		}
		plot.XLabel = "Month"
		plot.LegendTitle = "Engineer"
	}

	return plot
}

type AgeRow struct {
	AssignedTo      string
	AgeBusinessDays int
	TicketCount     int
}

// ComputeOpenTicketAges sums the age of open tickets per assignee, in
// business days, oldest pile first. Tickets without an assignee land in
// a shared "(unassigned)" bucket.
func ComputeOpenTicketAges(tickets []*model.Ticket, now time.Time) []AgeRow {
	ages := map[string]*AgeRow{}

	for _, t := range tickets {
		if !t.IsOpen() {
			continue
		}

		name := t.AssignedTo
		if name == "" {
			name = unassigned
		}

		row, ok := ages[name]
		if !ok {
			row = &AgeRow{AssignedTo: name}
			ages[name] = row
		}

		row.AgeBusinessDays += t.AgeBusinessDays(now)
		row.TicketCount++
	}

	result := lo.Map(lo.Values(ages), func(r *AgeRow, _ int) AgeRow { return *r })

	sort.Slice(result, func(i, j int) bool {
		if result[i].AgeBusinessDays != result[j].AgeBusinessDays {
			return result[i].AgeBusinessDays > result[j].AgeBusinessDays
		}
		return result[i].AssignedTo < result[j].AssignedTo
	})

	return result
}

// NewAgePlot builds the horizontal open ticket age chart, annotated with
// the number of tickets behind each bar.
func NewAgePlot(rows []AgeRow) *BarPlot {
	plural := pluralize.NewClient()

	plot := &BarPlot{
		Title:       "Total Age of Open Tickets by Assigned Person",
		XLabel:      "Total Age in Business Days",
		YLabel:      "Assigned To",
		Mode:        BarsStacked,
		Orientation: BarsHorizontal,
	}

	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		plot.Rows = append(plot.Rows, r.AssignedTo)
		plot.Annotations = append(plot.Annotations, plural.Pluralize("ticket", r.TicketCount, true))
		values = append(values, float64(r.AgeBusinessDays))
	}

	plot.Series = []BarSeries{{Color: "skyblue", Values: values}}

	return plot
}
