package am

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidParameter reports a frequency <= 0, a modulation index
	// outside [0, 1], or a non-finite parameter.
	ErrInvalidParameter = errors.New("invalid modulation parameter")
	// ErrNumericAnomaly reports a computation that would divide by zero or
	// produced NaN or Inf.
	ErrNumericAnomaly = errors.New("numeric anomaly")
	// ErrInvalidConfig reports a pipeline configuration the FFT cannot run.
	ErrInvalidConfig = errors.New("invalid pipeline config")
)

// ParameterError describes a rejected [Parameters] field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return "am: " + e.Field + " = " + strconv.FormatFloat(e.Value, 'g', -1, 64) + ": " + e.Reason
}

// Unwrap returns [ErrInvalidParameter].
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func anomalyf(format string, args ...any) error {
	return fmt.Errorf("am: %w: "+format, append([]any{ErrNumericAnomaly}, args...)...)
}
