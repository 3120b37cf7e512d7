package scatter

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
)

func TestLegendSwatches(t *testing.T) {
	graph := chart.Chart{
		Series: []chart.Series{
			pointSeries("Significant", significantColor, []float64{1}, []float64{2}),
			pointSeries("Not Significant", notSignificantColor, []float64{3}, []float64{4}),
		},
	}

	r, err := chart.SVG(400, 400)
	if err != nil {
		t.Fatal(err)
	}
	legend(&graph)(r, chart.Box{Top: 0, Left: 0, Right: 400, Bottom: 400}, chart.Style{})

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for name, color := range map[string]string{
		"red":  `rgba\(255,0,0,1\.0\)`,
		"blue": `rgba\(0,0,255,1\.0\)`,
	} {
		re := regexp.MustCompile(`stroke-width:(-?\d+);stroke:` + color + `;fill:` + color)
		m := re.FindStringSubmatch(out)
		if m == nil {
			t.Errorf("No filled %s swatch in the legend:\n%s", name, out)
			continue
		}
		if w, _ := strconv.Atoi(m[1]); w <= 0 {
			t.Errorf("The %s swatch has stroke width %d", name, w)
		}
	}

	for _, label := range []string{">Significant<", ">Not Significant<"} {
		if !bytes.Contains(buf.Bytes(), []byte(label)) {
			t.Errorf("Legend is missing %s", label)
		}
	}
}
