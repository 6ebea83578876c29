package signal

import (
	"math"
	"testing"
)

func TestModulateZeroIndexKeepsCarrier(t *testing.T) {
	g := NewGenerator()
	sig, err := g.AM(100, 10, 0, 4096)
	if err != nil {
		t.Fatalf("AM() error = %v", err)
	}
	for i := range sig.Carrier {
		if sig.Modulated[i] != sig.Carrier[i] {
			t.Fatalf("modulated[%d] = %v, want carrier %v", i, sig.Modulated[i], sig.Carrier[i])
		}
	}
}

func TestAMScenario(t *testing.T) {
	g := NewGenerator()
	sig, err := g.AM(100, 10, 0.5, 4096)
	if err != nil {
		t.Fatalf("AM() error = %v", err)
	}

	for name, s := range map[string][]float64{
		"carrier":     sig.Carrier,
		"information": sig.Information,
		"modulated":   sig.Modulated,
	} {
		if len(s) != 4096 {
			t.Fatalf("%s len = %d, want 4096", name, len(s))
		}
		if s[0] != 0 {
			t.Fatalf("%s[0] = %v, want 0", name, s[0])
		}
	}

	for i := range sig.Modulated {
		want := (1 + 0.5*sig.Information[i]) * sig.Carrier[i]
		if sig.Modulated[i] != want {
			t.Fatalf("modulated[%d] = %v, want %v", i, sig.Modulated[i], want)
		}
		if math.Abs(sig.Modulated[i]) > 1.5+1e-12 {
			t.Fatalf("modulated[%d] = %v exceeds envelope", i, sig.Modulated[i])
		}
	}
}

func TestModulateLengthMismatch(t *testing.T) {
	if _, err := Modulate(make([]float64, 4), make([]float64, 3), 0.5); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestModulateOverModulation(t *testing.T) {
	out, err := Modulate([]float64{1, 1}, []float64{-1, 1}, 2)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}
	if out[0] != -1 || out[1] != 3 {
		t.Fatalf("unexpected output: %v", out)
	}
}
