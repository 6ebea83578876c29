package am

import (
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/dsp/window"
)

// Option configures a [Pipeline].
type Option func(*settings)

type settings struct {
	cfg      core.ProcessorConfig
	window   window.Type
	periodic bool
	backend  spectrum.Backend
	parallel bool
}

func defaultSettings() settings {
	return settings{
		cfg:     core.DefaultProcessorConfig(),
		window:  window.TypeHamming,
		backend: spectrum.BackendAlgoFFT,
	}
}

// WithLength sets the number of samples per signal. It must be a power of
// two greater than one.
func WithLength(n int) Option {
	return func(s *settings) {
		s.cfg.Length = n
	}
}

// WithSampleRate sets the sample rate in Hz. Zero ties the rate to the
// length, which is the default.
func WithSampleRate(sampleRate float64) Option {
	return func(s *settings) {
		s.cfg.SampleRate = sampleRate
	}
}

// WithConfig replaces length and sample rate with cfg.
func WithConfig(cfg core.ProcessorConfig) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithWindow selects the analysis window. The default is Hamming.
func WithWindow(t window.Type) Option {
	return func(s *settings) {
		s.window = t
	}
}

// WithPeriodicWindow uses the periodic window form (N in the denominator)
// instead of the symmetric form (N-1).
func WithPeriodicWindow(periodic bool) Option {
	return func(s *settings) {
		s.periodic = periodic
	}
}

// WithBackend selects the FFT backend.
func WithBackend(b spectrum.Backend) Option {
	return func(s *settings) {
		s.backend = b
	}
}

// WithParallel analyzes the three channels concurrently. Results are
// identical to serial execution.
func WithParallel(parallel bool) Option {
	return func(s *settings) {
		s.parallel = parallel
	}
}
