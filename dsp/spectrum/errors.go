package spectrum

import "errors"

var (
	// ErrNotPowerOfTwo is returned for analyzer sizes the radix-2 FFT cannot handle.
	ErrNotPowerOfTwo = errors.New("fft size must be a power of two > 1")
	// ErrUnknownBackend is returned for unsupported backend values or names.
	ErrUnknownBackend = errors.New("unknown fft backend")
	// ErrMismatchedLength is returned when the input does not match the analyzer size.
	ErrMismatchedLength = errors.New("input length does not match fft size")
)
