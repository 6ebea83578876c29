package window

import "testing"

func BenchmarkWindowerApply(b *testing.B) {
	for _, typ := range Types() {
		b.Run(typ.String(), func(b *testing.B) {
			w, err := NewWindower(typ, 4096)
			if err != nil {
				b.Fatalf("NewWindower() error = %v", err)
			}
			x := make([]float64, 4096)
			for i := range x {
				x[i] = 1
			}
			dst := make([]float64, len(x))

			b.ReportAllocs()
			b.SetBytes(int64(len(x) * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := w.ApplyInto(dst, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
