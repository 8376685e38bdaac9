package reports

import (
	"golang.org/x/exp/rand"

	"github.com/90mp11/ProjectReportCreator/lib/categories"
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type ScatterOptions struct {
	JitterAmount float64
	JitterSource rand.Source

	EffortRanks    *categories.Map[int]
	ImpactRanks    *categories.Map[int]
	PriorityColors *categories.Map[string]
}

type PlotSeries struct {
	Name    string
	Color   string
	XValues []float64
	YValues []float64
}

type ScatterPlot struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	Series      []PlotSeries
}

type ScatterStats struct {
	Plotted          int
	MissingDimension int
	UnmappedPriority int
}

// ComputeProjectScatter turns projects into one jittered point cloud per
// priority tier. Projects whose priority carries no color are left out,
// as are projects missing an effort or impact rank. Both are counted in
// the stats so callers can warn about them.
func ComputeProjectScatter(projects []*model.Project, opts *ScatterOptions) (*ScatterPlot, *ScatterStats) {
	if opts == nil {
		opts = &ScatterOptions{}
	}

	efforts := opts.EffortRanks
	if efforts == nil {
		efforts = categories.EffortRanks()
	}
	impacts := opts.ImpactRanks
	if impacts == nil {
		impacts = categories.ImpactRanks()
	}
	colors := opts.PriorityColors
	if colors == nil {
		colors = categories.PriorityColors()
	}

	amount := opts.JitterAmount
	if amount == 0 {
		amount = DefaultJitterAmount
	}

	var jitter *Jitter
	if opts.JitterSource != nil {
		jitter = NewJitterWithSource(amount, opts.JitterSource)
	} else {
		jitter = NewJitter(amount)
	}

	stats := &ScatterStats{}

	byPriority := map[string][]*model.Project{}
	for _, p := range projects {
		if !colors.Contains(p.Priority) {
			stats.UnmappedPriority++
			continue
		}

		byPriority[p.Priority] = append(byPriority[p.Priority], p)
	}

	plot := &ScatterPlot{
		Title:       "Project Comparison: Estimated Effort vs Estimated Impact (Jittered)",
		XLabel:      "Estimated Effort (Numerical)",
		YLabel:      "Estimated Impact (Numerical)",
		LegendTitle: "Priority",
	}

	for _, priority := range colors.Labels() {
		var xs, ys []float64

		for _, p := range byPriority[priority] {
			effort, eok := efforts.Value(p.Effort)
			impact, iok := impacts.Value(p.Impact)
			if !eok || !iok {
				stats.MissingDimension++
				continue
			}

			xs = append(xs, float64(effort))
			ys = append(ys, float64(impact))
			stats.Plotted++
		}

		plot.Series = append(plot.Series, PlotSeries{
			Name:    priority,
			Color:   colors.ValueOr(priority),
			XValues: jitter.Apply(xs),
			YValues: jitter.Apply(ys),
		})
	}

	return plot, stats
}
