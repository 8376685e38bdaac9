package chartpng

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/90mp11/ProjectReportCreator/lib/renderers"
	"github.com/90mp11/ProjectReportCreator/lib/reports"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

// Renderer draws plots as PNG images using go-chart.
type Renderer struct {
}

var _ renderers.Renderer = &Renderer{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (c *Renderer) Scatter(plot *reports.ScatterPlot, w io.Writer) error {
	series := lo.Filter(plot.Series, func(s reports.PlotSeries, _ int) bool {
		return len(s.XValues) > 0
	})
	if len(series) == 0 {
		return errors.New("no points to draw")
	}

	gridStyle := chart.Style{
		StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
		StrokeWidth: 1,
	}

	graph := chart.Chart{
		Title:  plot.Title,
		Width:  1400,
		Height: 1000,
		XAxis: chart.XAxis{
			Name:           plot.XLabel,
			Range:          &chart.ContinuousRange{Min: 0.5, Max: 5.5},
			Ticks:          rankTicks(),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           plot.YLabel,
			Range:          &chart.ContinuousRange{Min: 0.5, Max: 5.5},
			Ticks:          rankTicks(),
			GridMajorStyle: gridStyle,
		},
	}

	for _, s := range series {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.XValues,
			YValues: s.YValues,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    parseColor(s.Color).WithAlpha(153),
			},
		})
	}

	entries := lo.Map(plot.Series, func(s reports.PlotSeries, _ int) legendEntry {
		return legendEntry{name: s.Name, color: parseColor(s.Color)}
	})
	graph.Elements = []chart.Renderable{newLegend(plot.LegendTitle, entries)}

	return graph.Render(chart.PNG, w)
}

func rankTicks() []chart.Tick {
	result := make([]chart.Tick, 0, 5)
	for i := 1; i <= 5; i++ {
		result = append(result, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	return result
}

func (c *Renderer) Bars(plot *reports.BarPlot, w io.Writer) error {
	if len(plot.Rows) == 0 || len(plot.Series) == 0 {
		return errors.New("no bars to draw")
	}

	if plot.Mode == reports.BarsGrouped && plot.Orientation == reports.BarsVertical {
		return c.renderGroupedBars(plot, w)
	}

	return c.renderStackedBars(plot, w)
}

// renderStackedBars also covers single series charts: those are just
// stacks with one segment.
//
// go-chart normalizes every stacked bar to full length, so each bar gets
// an invisible filler segment padding it to the tallest total. The
// filler goes first for vertical bars (segments are laid out downwards
// from the top) and last for horizontal ones (laid out from the axis to
// the right), keeping the visible segments anchored at the axis.
func (c *Renderer) renderStackedBars(plot *reports.BarPlot, w io.Writer) error {
	max := 0.0
	for _, row := range totalsPerRow(plot) {
		max = math.Max(max, row)
	}
	if max == 0 {
		return errors.New("no bars to draw")
	}

	// headroom keeps a filler on every bar, so annotations never vanish
	// on the tallest one
	max *= 1.15

	width, height := 1000, 700
	if plot.Orientation == reports.BarsHorizontal {
		height = 600
	}

	graph := chart.StackedBarChart{
		Title:        plot.Title,
		Width:        width,
		Height:       height,
		IsHorizontal: plot.Orientation == reports.BarsHorizontal,
		BarSpacing:   15,
	}

	barWidth := utils.Max(10, (width-200)/len(plot.Rows)-graph.BarSpacing)
	if graph.IsHorizontal {
		barWidth = utils.Max(10, (height-150)/len(plot.Rows)-graph.BarSpacing)
	}

	totals := totalsPerRow(plot)

	for i, row := range plot.Rows {
		bar := chart.StackedBar{
			Name:  row,
			Width: barWidth,
		}

		filler := chart.Value{
			Value: max - totals[i],
			Style: invisibleStyle(),
		}
		if i < len(plot.Annotations) {
			filler.Label = plot.Annotations[i]
			filler.Style.FontSize = 9
			filler.Style.FontColor = drawing.ColorBlack
		}

		if !graph.IsHorizontal {
			bar.Values = append(bar.Values, filler)
		}

		for _, s := range plot.Series {
			if s.Values[i] == 0 {
				continue
			}

			color := parseColor(s.Color)
			bar.Values = append(bar.Values, chart.Value{
				Value: s.Values[i],
				Style: chart.Style{
					FillColor:   color,
					StrokeColor: color,
					StrokeWidth: 1,
				},
			})
		}

		if graph.IsHorizontal {
			bar.Values = append(bar.Values, filler)
		}

		graph.Bars = append(graph.Bars, bar)
	}

	graph.Elements = barElements(plot)

	return graph.Render(chart.PNG, w)
}

// renderGroupedBars flattens each (row, series) pair into its own bar,
// with an empty spacer bar between row clusters. Only the middle bar of
// a cluster carries the row label.
func (c *Renderer) renderGroupedBars(plot *reports.BarPlot, w io.Writer) error {
	graph := chart.BarChart{
		Title:        plot.Title,
		Width:        1200,
		Height:       800,
		BarSpacing:   5,
		UseBaseValue: true,
		BaseValue:    0,
	}

	bars := len(plot.Rows) * (len(plot.Series) + 1)
	graph.BarWidth = utils.Max(5, (graph.Width-250)/bars-graph.BarSpacing)

	for i, row := range plot.Rows {
		if i > 0 {
			graph.Bars = append(graph.Bars, chart.Value{Value: 0, Style: invisibleStyle()})
		}

		for j, s := range plot.Series {
			color := parseColor(s.Color)

			value := chart.Value{
				Value: s.Values[i],
				Style: chart.Style{
					FillColor:   color,
					StrokeColor: color,
					StrokeWidth: 1,
				},
			}
			if j == len(plot.Series)/2 {
				value.Label = row
			}

			graph.Bars = append(graph.Bars, value)
		}
	}

	graph.Elements = barElements(plot)

	return graph.Render(chart.PNG, w)
}

func totalsPerRow(plot *reports.BarPlot) []float64 {
	result := make([]float64, len(plot.Rows))

	for i := range plot.Rows {
		for _, s := range plot.Series {
			result[i] += s.Values[i]
		}
	}

	return result
}

func barElements(plot *reports.BarPlot) []chart.Renderable {
	result := []chart.Renderable{newAxisLabels(plot.XLabel, plot.YLabel)}

	if len(plot.Series) > 1 {
		entries := lo.Map(plot.Series, func(s reports.BarSeries, _ int) legendEntry {
			return legendEntry{name: s.Name, color: parseColor(s.Color)}
		})
		result = append(result, newLegend(plot.LegendTitle, entries))
	}

	return result
}

func invisibleStyle() chart.Style {
	// alpha zero with a non zero RGB, so the style does not read as
	// unset and fall back to the default palette
	transparent := drawing.Color{R: 255, G: 255, B: 255, A: 0}

	return chart.Style{
		FillColor:   transparent,
		StrokeColor: transparent,
		StrokeWidth: 1,
	}
}

var namedColors = map[string]drawing.Color{
	"red":     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"orange":  {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"green":   {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"blue":    {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"skyblue": {R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
	"pink":    {R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
	"purple":  {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
	"teal":    {R: 0x00, G: 0x80, B: 0x80, A: 0xff},
}

func parseColor(s string) drawing.Color {
	if strings.HasPrefix(s, "#") {
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}

	return drawing.Color{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}
}
