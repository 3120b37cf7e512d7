// readcountscatter compares the per-gene read counts of two samples. Each gene
// found in both samples is tested with a chi square test of its count against
// the sample totals, p-values are corrected with Benjamini-Hochberg, and the
// counts are drawn as a scatterplot with significant genes in red.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/readcounts"
	"github.com/carbocation/readcounts/compileinfo"
	"github.com/carbocation/readcounts/counttable"
	"github.com/carbocation/readcounts/scatter"
	"github.com/carbocation/readcounts/significance"
)

type config struct {
	SampleA, SampleB string
	ScatterName      string

	Alpha       float64
	Format      string
	Delimiter   string
	ResultsFile string
	PHist       bool
}

func main() {
	var cfg config
	var printVersion bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] sample_a sample_b scatter_name\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "sample_a, sample_b: tab-delimited read count files with a header line, then gene<TAB>count on each line. Local or gs:// paths, optionally compressed.")
		fmt.Fprintln(flag.CommandLine.Output(), "scatter_name: base name for the scatterplot file. The extension is added for you.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Float64Var(&cfg.Alpha, "alpha", significance.DefaultAlpha, "False discovery rate at which a gene is called significant.")
	flag.StringVar(&cfg.Format, "format", string(scatter.SVG), "Scatterplot format: svg or png.")
	flag.StringVar(&cfg.Delimiter, "delimiter", "tab", "Column delimiter of the read count files: tab, comma, or auto.")
	flag.StringVar(&cfg.ResultsFile, "results", "", "Optional. Write per-gene counts, p-values and significance to this tab-delimited file.")
	flag.BoolVar(&cfg.PHist, "phist", false, "Print a histogram of the raw p-values to stderr?")
	flag.BoolVar(&printVersion, "version", false, "Print build information and exit.")
	flag.Parse()

	if printVersion {
		fmt.Println(compileinfo.Get())
		return
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	cfg.SampleA, cfg.SampleB, cfg.ScatterName = flag.Arg(0), flag.Arg(1), flag.Arg(2)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	format, err := scatter.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	delim, err := counttable.ParseDelimiter(cfg.Delimiter)
	if err != nil {
		return err
	}

	// Only reach for Google Storage credentials if we actually need them
	var client *storage.Client
	if readcounts.IsGoogleStoragePath(cfg.SampleA) || readcounts.IsGoogleStoragePath(cfg.SampleB) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	// Both samples must load before anything is written.
	tableA, err := counttable.ReadFile(ctx, cfg.SampleA, client, delim)
	if err != nil {
		return err
	}

	tableB, err := counttable.ReadFile(ctx, cfg.SampleB, client, delim)
	if err != nil {
		return err
	}

	for _, tab := range []*counttable.Table{tableA, tableB} {
		summary, err := tab.Summary()
		if err != nil {
			return err
		}
		log.Println(summary)
	}

	res, err := significance.Compare(tableA, tableB, cfg.Alpha)
	if err != nil {
		return err
	}

	for _, missing := range res.Missing {
		log.Println("Warning:", missing)
	}

	log.Printf("%d of %d genes found in both samples are significant at FDR %v\n", res.NSignificant(), res.Len(), res.Alpha)

	if cfg.PHist && res.Len() > 0 {
		hist := histogram.Hist(20, res.PValues)
		if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}

	// Render every output in memory first, so that a failure leaves nothing
	// behind on disk.
	filename := cfg.ScatterName + format.Extension()
	outputs := []output{{Path: filename}}
	if err := scatter.Render(&outputs[0].Data, scatter.Plot{
		X:           res.CountsA,
		Y:           res.CountsB,
		Significant: res.Rejected,
	}, format); err != nil {
		return err
	}

	if cfg.ResultsFile != "" {
		outputs = append(outputs, output{Path: cfg.ResultsFile})
		if err := res.WriteTSV(&outputs[1].Data); err != nil {
			return err
		}
	}

	if err := writeOutputs(outputs); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created file called %s\n", filename)

	return nil
}

type output struct {
	Path string
	Data bytes.Buffer
}

// writeOutputs creates every file before writing any of them. If a file
// can't be created or written, the files created so far are removed.
func writeOutputs(outputs []output) (err error) {
	files := make([]*os.File, 0, len(outputs))
	defer func() {
		for _, f := range files {
			f.Close()
			if err != nil {
				os.Remove(f.Name())
			}
		}
	}()

	for i := range outputs {
		f, err := os.Create(outputs[i].Path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	for i := range outputs {
		if _, err := outputs[i].Data.WriteTo(files[i]); err != nil {
			return err
		}
		if err := files[i].Sync(); err != nil {
			return err
		}
	}

	return nil
}
