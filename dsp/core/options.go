package core

import (
	"errors"
	"fmt"
)

// DefaultLength is the analysis length used when none is configured.
const DefaultLength = 4096

// ErrInvalidConfig is returned by [ProcessorConfig.Validate].
var ErrInvalidConfig = errors.New("invalid processor config")

// ProcessorConfig defines the shared sizing of one analysis run.
//
// SampleRate == 0 ties the rate to Length, so a run spans exactly one second
// and bin k of the spectrum lands on k Hz.
type ProcessorConfig struct {
	SampleRate float64
	Length     int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 4096-sample config with the rate tied to the length.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Length: DefaultLength,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithLength sets the number of samples per sequence.
func WithLength(length int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if length > 0 {
			cfg.Length = length
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Rate returns the effective sample rate in Hz.
func (c ProcessorConfig) Rate() float64 {
	if c.SampleRate > 0 {
		return c.SampleRate
	}
	return float64(c.Length)
}

// Nyquist returns half the effective sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.Rate() / 2
}

// BinWidth returns the spacing of spectrum bins in Hz.
func (c ProcessorConfig) BinWidth() float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Rate() / float64(c.Length)
}

// Validate reports whether the config can drive a radix-2 analysis.
func (c ProcessorConfig) Validate() error {
	if c.Length <= 1 {
		return fmt.Errorf("%w: length must be > 1: %d", ErrInvalidConfig, c.Length)
	}
	if !IsPowerOfTwo(c.Length) {
		return fmt.Errorf("%w: length must be a power of two: %d", ErrInvalidConfig, c.Length)
	}
	if c.SampleRate < 0 || !IsFinite(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be >= 0: %f", ErrInvalidConfig, c.SampleRate)
	}
	return nil
}
