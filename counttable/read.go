package counttable

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/readcounts"
)

// AutoDelimiter asks Read to sniff the delimiter from the data.
const AutoDelimiter rune = 0

// ParseDelimiter maps a command line delimiter name to a rune.
func ParseDelimiter(name string) (rune, error) {
	switch strings.ToLower(name) {
	case "tab", "\\t", "\t":
		return '\t', nil
	case "comma", ",":
		return ',', nil
	case "auto":
		return AutoDelimiter, nil
	}

	return 0, fmt.Errorf("unknown delimiter %q: expected tab, comma, or auto", name)
}

// Read parses a count table from r. The first line is a header and is
// ignored; each subsequent line is a gene and its read count separated by
// delim. Surrounding whitespace is stripped from both fields and blank lines
// are skipped. The first malformed line aborts the read with a *ParseError.
func Read(r io.Reader, name string, delim rune) (*Table, error) {
	// Count tables are small enough to hold in memory, which also lets us
	// sniff the delimiter before parsing.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	if delim == AutoDelimiter {
		delim = readcounts.DetermineDelimiter(data)
	}

	out := New(name)

	// Running sum of the table, so that Total can never overflow
	var total int64

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		// Skip the header
		if lineNum == 1 {
			continue
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, string(delim))
		if len(cols) != 2 {
			return nil, &ParseError{
				Sample: name,
				Line:   lineNum,
				Err:    fmt.Errorf("expected 2 fields separated by %q, found %d", delim, len(cols)),
			}
		}

		gene, value := strings.TrimSpace(cols[0]), strings.TrimSpace(cols[1])
		if gene == "" {
			return nil, &ParseError{Sample: name, Line: lineNum, Value: value, Err: fmt.Errorf("empty gene name")}
		}

		count, err := ParseCount(value)
		if err != nil {
			return nil, &ParseError{Sample: name, Line: lineNum, Gene: gene, Value: value, Err: err}
		}

		// A repeated gene replaces its earlier count
		prev, _ := out.Get(gene)
		if count > math.MaxInt64-(total-prev) {
			return nil, &ParseError{Sample: name, Line: lineNum, Gene: gene, Value: value, Err: fmt.Errorf("total read count out of range")}
		}
		total += count - prev

		out.Set(gene, count)
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	return out, nil
}

// ReadFile opens path (local or gs://, optionally compressed) and parses it
// with Read. The table is named after the path.
func ReadFile(ctx context.Context, path string, client *storage.Client, delim rune) (*Table, error) {
	f, err := readcounts.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, path, delim)
}
