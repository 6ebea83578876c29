package window

import (
	"errors"
	"fmt"
)

// ErrLengthTooShort is returned when a window would divide by size-1 <= 0.
var ErrLengthTooShort = errors.New("window size must be > 1")

// ErrMismatchedLength is returned when samples and coefficients differ in length.
var ErrMismatchedLength = errors.New("samples and coefficients must have same length")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errUnknownType      = errors.New("unknown window type")
)

func validateLength(size int) error {
	if size <= 1 {
		return fmt.Errorf("%w: %d", ErrLengthTooShort, size)
	}
	return nil
}
