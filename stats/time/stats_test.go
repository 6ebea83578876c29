package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateSine(t *testing.T) {
	x := testutil.DeterministicSine(8, 4096, 1, 4096)
	s := Calculate(x)

	if s.Length != 4096 {
		t.Fatalf("Length = %d, want 4096", s.Length)
	}
	if math.Abs(s.DC) > tolerance {
		t.Fatalf("DC = %v, want 0", s.DC)
	}
	if math.Abs(s.RMS-1/math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS = %v, want %v", s.RMS, 1/math.Sqrt2)
	}
	if math.Abs(s.Peak-1) > 1e-9 {
		t.Fatalf("Peak = %v, want 1", s.Peak)
	}
	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-8 {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}
	if s.RMS != RMS(x) {
		t.Fatalf("RMS mismatch: %v vs %v", s.RMS, RMS(x))
	}
	// 15 interior zeros; samples that land exactly on zero are not counted.
	if s.ZeroCrossings < 10 || s.ZeroCrossings > 16 {
		t.Fatalf("ZeroCrossings = %d, want about 15", s.ZeroCrossings)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("unexpected empty stats: %+v", s)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]float64, 16))
	if s.CrestFactor != 0 || !math.IsInf(s.CrestFactor_dB, -1) {
		t.Fatalf("unexpected silence crest factor: %v / %v", s.CrestFactor, s.CrestFactor_dB)
	}
}

func TestEnvelopeDepth(t *testing.T) {
	g := signal.NewGenerator()
	for _, m := range []float64{0, 0.25, 0.5, 1} {
		sig, err := g.AM(256, 4, m, 4096)
		if err != nil {
			t.Fatalf("AM() error = %v", err)
		}
		got := EnvelopeDepth(sig.Modulated, 4096/256)
		if math.Abs(got-m) > 0.02 {
			t.Fatalf("m=%v: EnvelopeDepth() = %v", m, got)
		}
	}
}

func TestEnvelopeDepthDegenerate(t *testing.T) {
	if EnvelopeDepth([]float64{1, 2, 3}, 0) != 0 {
		t.Fatal("expected 0 for zero cycle")
	}
	if EnvelopeDepth([]float64{1, 2, 3}, 2) != 0 {
		t.Fatal("expected 0 for short signal")
	}
	if EnvelopeDepth(make([]float64, 32), 4) != 0 {
		t.Fatal("expected 0 for silence")
	}
}
