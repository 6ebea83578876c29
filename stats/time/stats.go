// Package time computes time-domain descriptors of sample sequences.
package time

import "math"

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	Min            float64
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	ZeroCrossings  int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes the time-domain statistics of signal in one pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	s := Stats{
		Length: n,
		Max:    signal[0],
		Min:    signal[0],
	}

	var sum float64
	for i, x := range signal {
		sum += x
		s.Energy += x * x
		if x > s.Max {
			s.Max = x
		}
		if x < s.Min {
			s.Min = x
		}
		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}

	s.DC = sum / float64(n)
	s.RMS = math.Sqrt(s.Energy / float64(n))
	s.RMS_dB = ampTodB(s.RMS)
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Peak_dB = ampTodB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.CrestFactor_dB = ampTodB(s.CrestFactor)

	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// EnvelopeDepth estimates the AM modulation index of signal from its
// envelope, (max - min) / (max + min) of the per-cycle peaks.
//
// cycle is the carrier period in samples. The estimate needs at least one
// full information period in the signal. Returns 0 when it cannot be formed.
func EnvelopeDepth(signal []float64, cycle int) float64 {
	if cycle <= 0 || len(signal) < 2*cycle {
		return 0
	}

	hi := 0.0
	lo := math.Inf(1)
	for start := 0; start+cycle <= len(signal); start += cycle {
		p := Peak(signal[start : start+cycle])
		hi = math.Max(hi, p)
		lo = math.Min(lo, p)
	}

	if hi+lo == 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}
