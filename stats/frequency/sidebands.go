package frequency

import (
	"math"

	"github.com/cwbudde/algo-am/dsp/core"
)

// Sidebands describes the three spectral lines of a single-tone AM signal.
type Sidebands struct {
	Carrier    Line
	Lower      Line // carrier - information
	Upper      Line // carrier + information
	Depth      float64
	LowerRel   float64 // Lower / Carrier
	UpperRel   float64 // Upper / Carrier
	LowerRelDB float64
	UpperRelDB float64
}

// Line is a spectral line located near an expected frequency.
type Line struct {
	Bin       int
	Hz        float64
	Magnitude float64
}

// Found reports whether the line lies inside the spectrum.
func (l Line) Found() bool { return l.Bin >= 0 }

// FindSidebands locates the carrier and the lower and upper sidebands of a
// tone-modulated AM spectrum. Each line is the strongest bin within ±1 bin of
// its expected position. Depth is (lower + upper) / carrier, which equals
// the modulation index for m <= 1.
//
// Lines that fall outside the spectrum have Bin == -1.
func FindSidebands(magnitude []float64, binHz, carrierHz, informationHz float64) Sidebands {
	s := Sidebands{
		Carrier: findLine(magnitude, binHz, carrierHz),
		Lower:   findLine(magnitude, binHz, carrierHz-informationHz),
		Upper:   findLine(magnitude, binHz, carrierHz+informationHz),
	}
	if s.Carrier.Magnitude > 0 {
		s.LowerRel = s.Lower.Magnitude / s.Carrier.Magnitude
		s.UpperRel = s.Upper.Magnitude / s.Carrier.Magnitude
		s.Depth = s.LowerRel + s.UpperRel
	}
	s.LowerRelDB = core.LinearToDB(s.LowerRel)
	s.UpperRelDB = core.LinearToDB(s.UpperRel)
	return s
}

func findLine(magnitude []float64, binHz, hz float64) Line {
	if binHz <= 0 || hz < 0 {
		return Line{Bin: -1}
	}
	pos := math.Round(hz / binHz)
	if !(pos < float64(len(magnitude))) {
		return Line{Bin: -1}
	}
	center := int(pos)

	best := -1
	for i := center - 1; i <= center+1; i++ {
		if i < 0 || i >= len(magnitude) {
			continue
		}
		if best < 0 || magnitude[i] > magnitude[best] {
			best = i
		}
	}
	return Line{
		Bin:       best,
		Hz:        float64(best) * binHz,
		Magnitude: magnitude[best],
	}
}
