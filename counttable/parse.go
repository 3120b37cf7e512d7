package counttable

import (
	"fmt"
	"math"
	"strconv"
)

// ParseError describes a count table line that could not be turned into a
// gene and a read count. Any ParseError is fatal for the run.
type ParseError struct {
	Sample string
	Line   int
	Gene   string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Gene == "" {
		return fmt.Sprintf("%s line %d: %v. Fatal error, no output written.", e.Sample, e.Line, e.Err)
	}

	return fmt.Sprintf("%s line %d: Gene %s has invalid readcount value: %q (%v). Fatal error, no output written.", e.Sample, e.Line, e.Gene, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCount converts a raw count into a non-negative integer. Integers are
// parsed exactly; anything else must be a finite float (e.g., "1e8"), which is
// truncated toward zero.
func ParseCount(raw string) (int64, error) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative read count")
		}
		return v, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}

	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("not a finite number")
	case f < 0:
		return 0, fmt.Errorf("negative read count")
	case f >= math.MaxInt64:
		return 0, fmt.Errorf("read count out of range")
	}

	return int64(f), nil
}
