package scatter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func examplePlot() Plot {
	return Plot{
		X:           []int64{100, 5, 0, 2000},
		Y:           []int64{50, 5, 0, 10},
		Significant: []bool{false, false, false, true},
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, examplePlot(), SVG); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("Output does not look like an SVG document")
	}
	for _, label := range []string{DefaultTitle, DefaultXLabel, DefaultYLabel, "Not Significant", "Significant"} {
		if !strings.Contains(out, ">"+label+"<") {
			t.Errorf("SVG is missing the text %q", label)
		}
	}
}

func TestRenderSingleClass(t *testing.T) {
	p := Plot{
		X:           []int64{0, 0},
		Y:           []int64{0, 0},
		Significant: []bool{false, false},
	}

	var buf bytes.Buffer
	if err := Render(&buf, p, SVG); err != nil {
		t.Fatal(err)
	}
}

func TestRenderInvalid(t *testing.T) {
	for _, p := range []Plot{
		{},
		{X: []int64{1}, Y: []int64{1, 2}, Significant: []bool{false}},
		{X: []int64{1}, Y: []int64{1}, Significant: nil},
	} {
		var buf bytes.Buffer
		if err := Render(&buf, p, SVG); err == nil {
			t.Errorf("Expected an error for %+v", p)
		}
		if buf.Len() != 0 {
			t.Errorf("Expected nothing to be written for %+v", p)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []Format{SVG, PNG} {
		base := filepath.Join(dir, "scatter")

		filename, err := WriteFile(base, examplePlot(), format)
		if err != nil {
			t.Fatal(err)
		}
		if filename != base+"."+string(format) {
			t.Errorf("Expected %s%s, got %s", base, format.Extension(), filename)
		}

		st, err := os.Stat(filename)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", filename)
		}
	}
}

func TestWriteFileBadPath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "no", "such", "dir", "scatter")
	if _, err := WriteFile(base, examplePlot(), SVG); err == nil {
		t.Error("Expected an error writing to a missing directory")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("SVG"); err != nil || f != SVG {
		t.Errorf("Expected SVG, got %v (%v)", f, err)
	}
	if f, err := ParseFormat("png"); err != nil || f != PNG {
		t.Errorf("Expected PNG, got %v (%v)", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("Expected an error for pdf")
	}
}
