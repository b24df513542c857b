// Public domain.

package pull

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Hist is a histogram normalized as a probability density.
type Hist struct {
	Edges   []float64 // bin edges, len(Counts)+1
	Counts  []int
	Density []float64 // Counts / (entries in range * bin width)
	Entries int       // values within [Edges[0], Edges[n]]
}

// Histogram bins values into nbins equal bins spanning [lo, hi].
// Bins are half open except the last, which includes hi.  Values outside
// the range, and NaNs, are not counted.
func Histogram(values []float64, nbins int, lo, hi float64) (*Hist, error) {
	if nbins < 1 {
		return nil, errors.New("number of bins must be positive")
	}
	if !(lo < hi) {
		return nil, errors.New("empty histogram range")
	}
	h := &Hist{
		Edges:   make([]float64, nbins+1),
		Counts:  make([]int, nbins),
		Density: make([]float64, nbins),
	}
	w := (hi - lo) / float64(nbins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*w
	}
	h.Edges[nbins] = hi
	for _, x := range values {
		if !(x >= lo && x <= hi) {
			continue
		}
		i := int((x - lo) / w)
		if i >= nbins {
			i = nbins - 1
		}
		h.Counts[i]++
		h.Entries++
	}
	if h.Entries > 0 {
		norm := 1 / (float64(h.Entries) * w)
		for i, c := range h.Counts {
			h.Density[i] = float64(c) * norm
		}
	}
	return h, nil
}

// Summary describes a pull distribution.
type Summary struct {
	N       int
	Mean    float64
	StdDev  float64
	Outside int // values outside the plotted range
}

// Summarize computes mean and standard deviation of values.  For pulls
// these should be near 0 and 1.
func Summarize(values []float64, lo, hi float64) Summary {
	s := stats.Sample{Xs: values}
	sum := Summary{N: len(values), Mean: math.NaN(), StdDev: math.NaN()}
	if len(values) > 0 {
		sum.Mean = s.Mean()
	}
	if len(values) > 1 {
		sum.StdDev = s.StdDev()
	}
	for _, x := range values {
		if x < lo || x > hi {
			sum.Outside++
		}
	}
	return sum
}
