package reports

type BarMode int

const (
	BarsStacked BarMode = iota
	BarsGrouped
)

type BarOrientation int

const (
	BarsVertical BarOrientation = iota
	BarsHorizontal
)

// BarPlot is a renderer independent description of a bar chart. Rows is
// the category axis, and each series contributes one value per row.
type BarPlot struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	Mode        BarMode
	Orientation BarOrientation

	Rows        []string
	Series      []BarSeries
	Annotations []string
}

type BarSeries struct {
	Name   string
	Color  string
	Values []float64
}

// NewBarPlotFromGrid creates one series per grid column, with values
// aligned to the grid rows and colors assigned in column order.
func NewBarPlotFromGrid(grid *PivotGrid, mode BarMode) *BarPlot {
	series := make([]BarSeries, 0, len(grid.Cols()))

	for i, col := range grid.Cols() {
		values := make([]float64, 0, len(grid.Rows()))
		for _, row := range grid.Rows() {
			values = append(values, grid.Value(row, col))
		}

		series = append(series, BarSeries{
			Name:   col,
			Color:  SeriesColor(i),
			Values: values,
		})
	}

	return &BarPlot{
		Mode:        mode,
		Orientation: BarsVertical,
		Rows:        grid.Rows(),
		Series:      series,
	}
}
