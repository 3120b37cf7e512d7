package readcounts

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in a sample of a count table. Count tables are tab-delimited unless
// the detector finds otherwise.
func DetermineDelimiter(sample []byte) rune {
	if len(bytes.TrimSpace(sample)) == 0 {
		return '\t'
	}

	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')

	for _, v := range delimiters {
		if len(v) == 1 {
			return rune(v[0])
		}
	}

	return '\t'
}
