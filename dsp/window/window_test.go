package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("not symmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestHammingFormula(t *testing.T) {
	const n = 4096
	w, err := Hamming(n)
	if err != nil {
		t.Fatalf("Hamming() error = %v", err)
	}
	for i, v := range w {
		want := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestHammingShape(t *testing.T) {
	w, err := Hamming(4096)
	if err != nil {
		t.Fatalf("Hamming() error = %v", err)
	}
	if math.Abs(w[0]-0.08) > 1e-12 || math.Abs(w[len(w)-1]-0.08) > 1e-12 {
		t.Fatalf("edges = %v, %v, want 0.08", w[0], w[len(w)-1])
	}
	mid := w[len(w)/2]
	if mid < 0.999 || mid > 1 {
		t.Fatalf("midpoint = %v, want ~1", mid)
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if a[15] != 0 {
		t.Fatalf("symmetric Hann last = %v, want 0", a[15])
	}
	if b[15] == 0 {
		t.Fatal("periodic Hann should not end at 0")
	}
}

func TestConstructorsRejectShortLength(t *testing.T) {
	ctors := map[string]func(int, ...Option) ([]float64, error){
		"hann":     Hann,
		"hamming":  Hamming,
		"blackman": Blackman,
		"flattop":  FlatTop,
	}
	for name, ctor := range ctors {
		for _, n := range []int{-1, 0, 1} {
			if _, err := ctor(n); !errors.Is(err, ErrLengthTooShort) {
				t.Fatalf("%s(%d) error = %v, want ErrLengthTooShort", name, n, err)
			}
		}
	}
}

func TestGenerateEdgeLengths(t *testing.T) {
	if w := Generate(TypeHamming, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	w := Generate(TypeHamming, 1)
	if len(w) != 1 || math.IsNaN(w[0]) {
		t.Fatalf("Generate(1) = %v", w)
	}
}

func TestApplyInPlace(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf)
	want := []float64{0, 1, 2, 1, 0}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"hamming":     TypeHamming,
		"Hann":        TypeHann,
		" blackman ":  TypeBlackman,
		"flat-top":    TypeFlatTop,
		"rectangular": TypeRectangular,
	}
	for in, want := range tests {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseType(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unsupported window")
	}
}

func TestEquivalentNoiseBandwidthMatchesInfo(t *testing.T) {
	for _, typ := range Types() {
		enbw, err := EquivalentNoiseBandwidth(Generate(typ, 4096, WithPeriodic()))
		if err != nil {
			t.Fatalf("%v: ENBW error = %v", typ, err)
		}
		if math.Abs(enbw-Info(typ).ENBW) > 0.01 {
			t.Fatalf("%v: ENBW = %v, want %v", typ, enbw, Info(typ).ENBW)
		}
	}
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestCoherentGain(t *testing.T) {
	got := CoherentGain(Generate(TypeHamming, 4096, WithPeriodic()))
	if math.Abs(got-0.54) > 1e-9 {
		t.Fatalf("CoherentGain() = %v, want 0.54", got)
	}
	if CoherentGain(nil) != 0 {
		t.Fatal("CoherentGain(nil) should be 0")
	}
}

func TestApplyPeriodicAndEmpty(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf, WithPeriodic())
	want := []float64{0, 0.5, 1, 0.5}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	Apply(TypeHann, nil)
}
