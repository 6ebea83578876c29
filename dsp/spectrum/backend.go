package spectrum

import (
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation used by an [Analyzer].
type Backend int

const (
	// BackendAlgoFFT uses a precomputed algo-fft plan.
	BackendAlgoFFT Backend = iota
	// BackendGonum uses gonum's complex FFT.
	BackendGonum
	// BackendGoDSP uses go-dsp's radix-2 FFT.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// Backends lists the available backends.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// ParseBackend resolves a backend by name.
func ParseBackend(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "")
	for b, n := range backendNames {
		if n == key {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// transformer computes a forward DFT of a fixed size into dst.
// Implementations are not safe for concurrent use.
type transformer interface {
	forward(dst, src []complex128) error
}

func newTransformer(b Backend, size int) (transformer, error) {
	switch b {
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(size)
		if err != nil {
			return nil, fmt.Errorf("algofft plan: %w", err)
		}
		return &algoTransformer{plan: plan}, nil
	case BackendGonum:
		return &gonumTransformer{fft: fourier.NewCmplxFFT(size)}, nil
	case BackendGoDSP:
		return goDSPTransformer{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}
}

type algoTransformer struct {
	plan *algofft.Plan[complex128]
}

func (t *algoTransformer) forward(dst, src []complex128) error {
	return t.plan.Forward(dst, src)
}

type gonumTransformer struct {
	fft *fourier.CmplxFFT
}

func (t *gonumTransformer) forward(dst, src []complex128) error {
	t.fft.Coefficients(dst, src)
	return nil
}

type goDSPTransformer struct{}

func (goDSPTransformer) forward(dst, src []complex128) error {
	copy(dst, godsp.FFT(src))
	return nil
}
