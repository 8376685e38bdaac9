package renderers

import (
	"io"

	"github.com/90mp11/ProjectReportCreator/lib/reports"
)

// Renderer turns computed plots into image bytes. Implementations draw
// the pixels; everything about what to draw is decided upstream.
type Renderer interface {
	Scatter(plot *reports.ScatterPlot, w io.Writer) error
	Bars(plot *reports.BarPlot, w io.Writer) error
}
