// Package am synthesizes a tone-modulated AM signal and analyzes it.
//
// A [Pipeline] turns [Parameters] into a [Result] holding the carrier,
// information and modulated signals, their Hamming-windowed magnitude
// spectra, and the time and frequency axes to plot them against:
//
//	res, err := am.Analyze(am.Parameters{
//		CarrierFrequency:     100,
//		InformationFrequency: 10,
//		ModulationIndex:      0.5,
//	})
//
// With the default configuration every sequence has 4096 samples at a
// sample rate of 4096 Hz, so the run spans one second and spectrum bin k is
// k Hz. Spectra hold the non-negative half of the DFT, bins 0..N/2-1.
//
// Every call recomputes everything from its parameters. A Pipeline keeps
// only its configuration (window coefficients and FFT plans) and is safe for
// concurrent use.
package am
