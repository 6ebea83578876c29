// Package frequency computes descriptors of one-sided magnitude spectra.
//
// Bin i of a spectrum sits at i*binHz, where binHz = sampleRate/fftSize.
package frequency

import "math"

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount  int
	Max       float64
	MaxBin    int
	PeakHz    float64
	Energy    float64 // sum of squared magnitudes
	Centroid  float64 // spectral centroid (Hz)
	Spread    float64 // spectral spread (Hz)
	Bandwidth float64 // 3 dB bandwidth around peak (Hz)
}

// Calculate computes all statistics from a linear magnitude spectrum.
func Calculate(magnitude []float64, binHz float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	s := Stats{BinCount: n, Max: magnitude[0]}
	sum := 0.0
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}
	s.PeakHz = float64(s.MaxBin) * binHz
	s.Centroid = centroid(magnitude, binHz, sum)
	s.Spread = spread(magnitude, binHz, s.Centroid, sum)
	s.Bandwidth = Bandwidth(magnitude, binHz)

	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, binHz float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, binHz, sum)
}

func centroid(magnitude []float64, binHz, sumMag float64) float64 {
	if len(magnitude) < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += float64(i) * binHz * v
	}
	return weightedSum / sumMag
}

// spread computes spectral spread (standard deviation of the spectrum around the centroid).
func spread(magnitude []float64, binHz, cent, sumMag float64) float64 {
	if len(magnitude) < 2 || sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := float64(i)*binHz - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sumMag)
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz.
//
// The -3 dB points (where magnitude drops to peak/sqrt(2)) are located on
// both sides of the peak with linear interpolation between bins.
func Bandwidth(magnitude []float64, binHz float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	peakBin := 0
	for i, v := range magnitude {
		if v > magnitude[peakBin] {
			peakBin = i
		}
	}
	peakVal := magnitude[peakBin]
	if peakVal == 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	lower := 0.0
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = crossing(i-1, magnitude[i-1], magnitude[i], threshold)
			break
		}
	}

	upper := float64(n - 1)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = crossing(i, magnitude[i], magnitude[i+1], threshold)
			break
		}
	}

	if upper < lower {
		return 0
	}
	return (upper - lower) * binHz
}

// crossing returns the fractional bin between bin and bin+1 where the
// magnitude crosses threshold.
func crossing(bin int, magLow, magHigh, threshold float64) float64 {
	denom := magHigh - magLow
	if denom == 0 {
		return float64(bin) + 0.5
	}
	return float64(bin) + (threshold-magLow)/denom
}
