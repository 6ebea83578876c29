package window

import (
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Windower applies a fixed window to sequences of one length.
//
// Coefficients are computed once; a Windower is safe for concurrent use.
type Windower struct {
	typ    Type
	coeffs []float64
}

// NewWindower precomputes coefficients for sequences of the given length.
func NewWindower(t Type, length int, opts ...Option) (*Windower, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	return &Windower{
		typ:    t,
		coeffs: Generate(t, length, opts...),
	}, nil
}

// Type returns the window type.
func (w *Windower) Type() Type { return w.typ }

// Len returns the sequence length the windower accepts.
func (w *Windower) Len() int { return len(w.coeffs) }

// Coefficients returns a copy of the window coefficients.
func (w *Windower) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs...)
}

// Apply returns x multiplied by the window. x is not modified.
func (w *Windower) Apply(x []float64) ([]float64, error) {
	return w.ApplyInto(nil, x)
}

// ApplyInto writes the windowed x into dst, reusing its capacity, and returns it.
func (w *Windower) ApplyInto(dst, x []float64) ([]float64, error) {
	if len(x) != len(w.coeffs) {
		return nil, ErrMismatchedLength
	}
	dst = core.EnsureLen(dst, len(x))
	vecmath.MulBlock(dst, x, w.coeffs)
	return dst, nil
}
