// Package axis builds the time and frequency axes that pair with sample and
// magnitude sequences for plotting.
package axis

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	errLength     = errors.New("axis length must be > 0")
	errSampleRate = errors.New("axis sample rate must be > 0")
)

// Time returns t[i] = i/sampleRate seconds for i in 0..n-1.
func Time(n int, sampleRate float64) ([]float64, error) {
	if err := validate(n, sampleRate); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out, nil
}

// Frequency returns the bin centres f[i] = i/n*sampleRate Hz for the n/2
// non-negative bins of an n-point DFT.
func Frequency(n int, sampleRate float64) ([]float64, error) {
	if err := validate(n, sampleRate); err != nil {
		return nil, err
	}
	out := make([]float64, n/2)
	for i := range out {
		out[i] = float64(i) / float64(n) * sampleRate
	}
	return out, nil
}

// Range returns the sub-slices of axis and values whose axis entries lie
// within [lo, hi]. axis must be ascending and the same length as values.
// The returned slices alias the inputs.
func Range(axis, values []float64, lo, hi float64) ([]float64, []float64, error) {
	if len(axis) != len(values) {
		return nil, nil, fmt.Errorf("axis/value length mismatch: %d != %d", len(axis), len(values))
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, nil, fmt.Errorf("axis range is not a number: [%g, %g]", lo, hi)
	}
	if lo > hi {
		return nil, nil, fmt.Errorf("axis range is inverted: [%g, %g]", lo, hi)
	}
	i0 := sort.SearchFloat64s(axis, lo)
	i1 := sort.Search(len(axis), func(i int) bool { return axis[i] > hi })
	return axis[i0:i1], values[i0:i1], nil
}

func validate(n int, sampleRate float64) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", errLength, n)
	}
	if !(sampleRate > 0) {
		return fmt.Errorf("%w: %f", errSampleRate, sampleRate)
	}
	return nil
}
