package chartpng

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

type legendEntry struct {
	name  string
	color drawing.Color
}

// newLegend draws a legend box at the top right of the canvas. The
// builtin chart.Legend only works for chart.Chart and cannot carry a
// title, so bar charts need their own.
func newLegend(title string, entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		font, err := chart.GetDefaultFont()
		if err != nil {
			return
		}

		r.SetFont(font)
		r.SetFontSize(9)

		const lineHeight = 16
		const swatch = 10
		const padding = 8

		width := 0
		if title != "" {
			width = r.MeasureText(title).Width()
		}
		for _, e := range entries {
			width = utils.Max(width, swatch+5+r.MeasureText(e.name).Width())
		}

		lines := len(entries)
		if title != "" {
			lines++
		}

		box := chart.Box{
			Left:   cb.Right - width - 2*padding - 10,
			Top:    cb.Top + 10,
			Right:  cb.Right - 10,
			Bottom: cb.Top + 10 + lines*lineHeight + 2*padding,
		}

		fillRect(r, box, drawing.ColorWhite, drawing.Color{R: 200, G: 200, B: 200, A: 255})

		x := box.Left + padding
		y := box.Top + padding + lineHeight - 4

		r.SetFontColor(drawing.ColorBlack)

		if title != "" {
			r.Text(title, x, y)
			y += lineHeight
		}

		for _, e := range entries {
			fillRect(r, chart.Box{Left: x, Top: y - swatch, Right: x + swatch, Bottom: y}, e.color, e.color)

			r.SetFontColor(drawing.ColorBlack)
			r.Text(e.name, x+swatch+5, y)
			y += lineHeight
		}
	}
}

// newAxisLabels writes the axis names, which the bar chart types have no
// fields for.
func newAxisLabels(xLabel, yLabel string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		font, err := chart.GetDefaultFont()
		if err != nil {
			return
		}

		r.SetFont(font)
		r.SetFontSize(11)
		r.SetFontColor(drawing.ColorBlack)

		if xLabel != "" {
			b := r.MeasureText(xLabel)
			r.Text(xLabel, cb.Left+(cb.Width()-b.Width())/2, cb.Bottom+40)
		}

		if yLabel != "" {
			b := r.MeasureText(yLabel)
			r.SetTextRotation(-math.Pi / 2)
			r.Text(yLabel, cb.Left-50, cb.Top+(cb.Height()+b.Width())/2)
			r.ClearTextRotation()
		}
	}
}

func fillRect(r chart.Renderer, box chart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Right, box.Top)
	r.LineTo(box.Right, box.Bottom)
	r.LineTo(box.Left, box.Bottom)
	r.Close()
	r.FillStroke()
}
