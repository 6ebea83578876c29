package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-am/dsp/core"
)

// Option configures an [Analyzer].
type Option func(*Analyzer)

// WithBackend selects the FFT backend. The default is [BackendAlgoFFT].
func WithBackend(b Backend) Option {
	return func(a *Analyzer) {
		a.backend = b
	}
}

// Analyzer computes forward FFTs of real sequences of one size.
//
// Backend state is pooled, so an Analyzer is safe for concurrent use.
type Analyzer struct {
	size    int
	backend Backend
	pool    sync.Pool
}

// NewAnalyzer creates an analyzer for sequences of the given size.
func NewAnalyzer(size int, opts ...Option) (*Analyzer, error) {
	if size <= 1 || !core.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, size)
	}

	a := &Analyzer{size: size}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	// Build one transformer up front so configuration errors surface here.
	t, err := newTransformer(a.backend, size)
	if err != nil {
		return nil, err
	}
	a.pool.New = func() any {
		t, err := newTransformer(a.backend, a.size)
		if err != nil {
			return nil
		}
		return t
	}
	a.pool.Put(t)

	return a, nil
}

// Size returns the FFT size.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of magnitude bins, Size()/2.
func (a *Analyzer) Bins() int { return a.size / 2 }

// Backend returns the configured backend.
func (a *Analyzer) Backend() Backend { return a.backend }

// Transform returns the full complex DFT of the real sequence x.
func (a *Analyzer) Transform(x []float64) ([]complex128, error) {
	if len(x) != a.size {
		return nil, fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(x), a.size)
	}

	in := make([]complex128, a.size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, a.size)

	t, ok := a.pool.Get().(transformer)
	if !ok || t == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, a.backend)
	}
	defer a.pool.Put(t)

	if err := t.forward(out, in); err != nil {
		return nil, fmt.Errorf("%v forward: %w", a.backend, err)
	}
	return out, nil
}

// Magnitude returns |X[k]| of the real sequence x for bins 0..Size()/2-1.
func (a *Analyzer) Magnitude(x []float64) ([]float64, error) {
	bins, err := a.Transform(x)
	if err != nil {
		return nil, err
	}
	return Magnitude(bins[:a.Bins()]), nil
}
