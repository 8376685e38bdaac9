package chartpng

import (
	"bytes"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"golang.org/x/exp/rand"

	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/reports"
)

func TestRenderer(t *testing.T) {
	testgroup.RunInParallel(t, &RendererTests{})
}

type RendererTests struct {
}

func (g *RendererTests) assertPNG(t *testgroup.T, buf *bytes.Buffer) {
	t.Greater(buf.Len(), 8)
	t.Equal([]byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func (g *RendererTests) newBarPlot() *reports.BarPlot {
	return &reports.BarPlot{
		Title:       "Resolved Items Per Month by Engineer",
		XLabel:      "Month",
		YLabel:      "Number of Resolved Items",
		LegendTitle: "Engineer",
		Rows:        []string{"2024-01", "2024-02"},
		Series: []reports.BarSeries{
			{Name: "Andy Oxford", Color: "#3498db", Values: []float64{2, 0}},
			{Name: "Chris Kelly", Color: "#9b59b6", Values: []float64{0, 1}},
		},
	}
}

func (g *RendererTests) ScatterPNG(t *testgroup.T) {
	p1 := model.NewProject("a", nil)
	p1.Priority = "P1"
	p1.Effort = "Hours"
	p1.Impact = "Very High"

	p2 := model.NewProject("b", nil)
	p2.Priority = "P3"
	p2.Effort = "Months"
	p2.Impact = "Low"

	plot, _ := reports.ComputeProjectScatter([]*model.Project{p1, p2},
		&reports.ScatterOptions{JitterSource: rand.NewSource(42)})

	buf := &bytes.Buffer{}
	err := NewRenderer().Scatter(plot, buf)

	t.NoError(err)
	g.assertPNG(t, buf)
}

func (g *RendererTests) ScatterWithoutPointsFails(t *testgroup.T) {
	plot, _ := reports.ComputeProjectScatter(nil,
		&reports.ScatterOptions{JitterSource: rand.NewSource(42)})

	err := NewRenderer().Scatter(plot, &bytes.Buffer{})

	t.Error(err)
}

func (g *RendererTests) StackedBarsPNG(t *testgroup.T) {
	buf := &bytes.Buffer{}
	err := NewRenderer().Bars(g.newBarPlot(), buf)

	t.NoError(err)
	g.assertPNG(t, buf)
}

func (g *RendererTests) GroupedBarsPNG(t *testgroup.T) {
	plot := g.newBarPlot()
	plot.Mode = reports.BarsGrouped

	buf := &bytes.Buffer{}
	err := NewRenderer().Bars(plot, buf)

	t.NoError(err)
	g.assertPNG(t, buf)
}

func (g *RendererTests) HorizontalBarsWithAnnotationsPNG(t *testgroup.T) {
	plot := reports.NewAgePlot([]reports.AgeRow{
		{AssignedTo: "Andy Oxford", AgeBusinessDays: 8, TicketCount: 2},
		{AssignedTo: "Chris Kelly", AgeBusinessDays: 1, TicketCount: 1},
	})

	buf := &bytes.Buffer{}
	err := NewRenderer().Bars(plot, buf)

	t.NoError(err)
	g.assertPNG(t, buf)
}

func (g *RendererTests) EmptyBarsFail(t *testgroup.T) {
	err := NewRenderer().Bars(&reports.BarPlot{}, &bytes.Buffer{})

	t.Error(err)
}
