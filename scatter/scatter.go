// Package scatter draws the per-gene read counts of two samples against each
// other, colored by significance.
package scatter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG:
		return f, nil
	}

	return "", fmt.Errorf("unknown plot format %q: expected svg or png", s)
}

// Extension is the file extension, including the dot, used for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) renderer() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}

	return chart.SVG
}

// Plot holds one point per gene. X and Y are the gene's read counts in the
// two samples, and Significant marks the genes to highlight.
type Plot struct {
	X, Y        []int64
	Significant []bool

	// Optional; defaults are used when empty.
	Title, XLabel, YLabel string
}

const (
	DefaultTitle  = "Gene Read Counts"
	DefaultXLabel = "Sample A Read Counts"
	DefaultYLabel = "Sample B Read Counts"
)

var (
	significantColor    = drawing.ColorRed
	notSignificantColor = drawing.ColorBlue
)

func (p Plot) validate() error {
	if len(p.X) != len(p.Y) || len(p.X) != len(p.Significant) {
		return fmt.Errorf("plot has %d x values, %d y values and %d significance flags", len(p.X), len(p.Y), len(p.Significant))
	}

	if len(p.X) == 0 {
		return fmt.Errorf("no genes to plot")
	}

	return nil
}

// Render draws the plot to w in the given format.
func Render(w io.Writer, p Plot, format Format) error {
	if err := p.validate(); err != nil {
		return err
	}

	var sigX, sigY, nonX, nonY []float64
	maxX, maxY := 0.0, 0.0
	for i := range p.X {
		x, y := float64(p.X[i]), float64(p.Y[i])
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}

		if p.Significant[i] {
			sigX, sigY = append(sigX, x), append(sigY, y)
		} else {
			nonX, nonY = append(nonX, x), append(nonY, y)
		}
	}

	// go-chart refuses to draw empty series, so a class with no genes is left
	// out of the plot (and the legend).
	var series []chart.Series
	if len(sigX) > 0 {
		series = append(series, pointSeries("Significant", significantColor, sigX, sigY))
	}
	if len(nonX) > 0 {
		series = append(series, pointSeries("Not Significant", notSignificantColor, nonX, nonY))
	}

	graph := chart.Chart{
		Title:  orDefault(p.Title, DefaultTitle),
		Width:  800,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 25, Right: 25, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  orDefault(p.XLabel, DefaultXLabel),
			Range: axisRange(maxX),
		},
		YAxis: chart.YAxis{
			Name:  orDefault(p.YLabel, DefaultYLabel),
			Range: axisRange(maxY),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{legend(&graph)}

	// Render to a byte buffer so that a failed render leaves w untouched
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(format.renderer(), buffer); err != nil {
		return err
	}

	_, err := buffer.WriteTo(w)
	return err
}

// WriteFile renders the plot to base plus the format's extension and returns
// the name of the file it wrote.
func WriteFile(base string, p Plot, format Format) (string, error) {
	filename := base + format.Extension()

	// Render first so that nothing is created on disk if the plot is invalid
	var buffer bytes.Buffer
	if err := Render(&buffer, p, format); err != nil {
		return "", err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return "", err
	}

	return filename, outFile.Close()
}

func pointSeries(name string, color drawing.Color, x, y []float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			StrokeColor: color,
			DotWidth:    3,
			DotColor:    color,
		},
		XValues: x,
		YValues: y,
	}
}

// axisRange starts at zero and leaves a little headroom above the largest
// count. A range of zero width can't be drawn, so all-zero axes span [0, 1].
func axisRange(max float64) *chart.ContinuousRange {
	if max <= 0 {
		max = 1
	}

	return &chart.ContinuousRange{Min: 0, Max: max * 1.05}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
