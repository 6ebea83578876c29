// Package spectrum turns real sample blocks into magnitude spectra.
//
// An [Analyzer] owns a forward FFT of one power-of-two size. The transform
// itself is delegated to a selectable [Backend]; all backends produce the
// same unnormalized DFT, X[k] = sum x[n]*exp(-2*pi*i*k*n/N), so callers can
// switch between them without rescaling.
//
// Magnitude spectra returned by [Analyzer.Magnitude] hold the non-negative
// frequency half of the DFT, bins 0..N/2-1.
package spectrum
