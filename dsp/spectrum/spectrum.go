package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| = sqrt(re^2 + im^2) for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Peak returns the index and value of the largest magnitude.
// It returns -1, 0 for an empty spectrum.
func Peak(mag []float64) (int, float64) {
	return PeakInRange(mag, 0, len(mag)-1)
}

// PeakInRange returns the largest magnitude among bins lo..hi inclusive.
// The range is clipped to the spectrum; an empty range yields -1, 0.
func PeakInRange(mag []float64, lo, hi int) (int, float64) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(mag)-1 {
		hi = len(mag) - 1
	}
	if lo > hi {
		return -1, 0
	}

	bin := lo
	for i := lo + 1; i <= hi; i++ {
		if mag[i] > mag[bin] {
			bin = i
		}
	}
	return bin, mag[bin]
}
