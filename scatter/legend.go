package scatter

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendPadding  = 8
	legendSwatch   = 10
	legendFontSize = 10.0
)

// legend draws a key in the top left of the plot area with a filled swatch in
// each series' dot color. chart.Legend draws its swatches as line segments in
// the series' stroke width, which point series disable.
func legend(c *chart.Chart) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		font := defaults.GetFont()
		if font == nil {
			if f, err := chart.GetDefaultFont(); err == nil {
				font = f
			}
		}
		r.SetFont(font)
		r.SetFontSize(legendFontSize)

		var names []string
		var colors []drawing.Color
		textWidth, textHeight := 0, 0
		for _, s := range c.Series {
			names = append(names, s.GetName())
			colors = append(colors, s.GetStyle().DotColor)

			tb := r.MeasureText(s.GetName())
			if tb.Width() > textWidth {
				textWidth = tb.Width()
			}
			if tb.Height() > textHeight {
				textHeight = tb.Height()
			}
		}

		if len(names) == 0 {
			return
		}

		rowHeight := legendSwatch
		if textHeight > rowHeight {
			rowHeight = textHeight
		}

		left, top := cb.Left+legendPadding, cb.Top+legendPadding
		right := left + 3*legendPadding + legendSwatch + textWidth
		bottom := top + legendPadding + len(names)*(rowHeight+legendPadding)

		// Frame
		r.SetFillColor(drawing.ColorWhite)
		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		fillRect(r, left, top, right, bottom)

		for i, name := range names {
			y := top + legendPadding + i*(rowHeight+legendPadding)
			x := left + legendPadding

			r.SetFillColor(colors[i])
			r.SetStrokeColor(colors[i])
			r.SetStrokeWidth(1)
			fillRect(r, x, y, x+legendSwatch, y+legendSwatch)

			r.SetFontColor(drawing.ColorBlack)
			r.Text(name, x+legendSwatch+legendPadding, y+rowHeight)
		}
	}
}

func fillRect(r chart.Renderer, left, top, right, bottom int) {
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
	r.FillStroke()
}
