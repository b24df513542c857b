// Public domain.

package ctools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FitStats holds likelihood fit statistics from a ctlike log.
type FitStats struct {
	LogL       float64 // maximum log likelihood
	Nobs       float64 // observed events
	Npred      float64 // predicted events
	Iterations int
}

// ReadFitStats scans a ctlike log.  Lines not present in the log leave
// the corresponding field zero.  When the log holds several fits, the last
// one wins.  A labelled value that does not parse is an error.
func ReadFitStats(r io.Reader) (s FitStats, err error) {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		l := sc.Text()
		if v, ok := logValue(l, "Maximum log likelihood"); ok {
			s.LogL, err = strconv.ParseFloat(v, 64)
		} else if v, ok := logValue(l, "Observed events"); ok {
			s.Nobs, err = strconv.ParseFloat(v, 64)
		} else if v, ok := logValue(l, "Predicted events"); ok {
			s.Npred, err = strconv.ParseFloat(v, 64)
		} else if v, ok := logValue(l, "Number of iterations"); ok {
			s.Iterations, err = strconv.Atoi(v)
		}
		if err != nil {
			return s, fmt.Errorf("log line %d: %w", n, err)
		}
	}
	return s, sc.Err()
}

// ReadFitStatsFile reads fit statistics from a ctlike log file.
func ReadFitStatsFile(fn string) (FitStats, error) {
	f, err := os.Open(fn)
	if err != nil {
		return FitStats{}, err
	}
	defer f.Close()
	s, err := ReadFitStats(f)
	if err != nil {
		return s, fmt.Errorf("%s: %w", fn, err)
	}
	return s, nil
}

// logValue finds label in a log line and returns the first word
// following the next colon.
func logValue(line, label string) (string, bool) {
	i := strings.Index(line, label)
	if i < 0 {
		return "", false
	}
	rest := line[i+len(label):]
	c := strings.IndexByte(rest, ':')
	if c < 0 {
		return "", false
	}
	f := strings.Fields(rest[c+1:])
	if len(f) == 0 {
		return "", false
	}
	return f[0], true
}
