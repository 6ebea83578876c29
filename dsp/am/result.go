package am

import (
	"github.com/cwbudde/algo-am/dsp/axis"
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/dsp/window"
	"github.com/cwbudde/algo-am/stats/frequency"
)

// Channel names.
const (
	ChannelCarrier     = "carrier"
	ChannelInformation = "information"
	ChannelModulated   = "modulated"
)

// Channel is one analyzed signal.
//
// Signal pairs with [Result.Time]; Spectrum pairs with [Result.Frequency].
type Channel struct {
	Name     string
	Signal   []float64
	Spectrum []float64
}

// Peak returns the strongest spectrum bin.
func (c Channel) Peak() (int, float64) {
	return spectrum.Peak(c.Spectrum)
}

// Result bundles everything one pipeline run produced.
type Result struct {
	Parameters Parameters
	Config     core.ProcessorConfig
	Window     window.Type
	Backend    spectrum.Backend

	// Time holds t[i] = i/rate seconds, one entry per signal sample.
	Time []float64
	// Frequency holds the bin frequencies in Hz, one entry per spectrum bin.
	Frequency []float64

	Carrier     Channel
	Information Channel
	Modulated   Channel
}

// Channels returns carrier, information and modulated, in that order.
func (r *Result) Channels() []Channel {
	return []Channel{r.Carrier, r.Information, r.Modulated}
}

// Aliased reports whether any tone in any channel lies at or above the
// Nyquist frequency and therefore folds back into the displayed band.
func (r *Result) Aliased() bool {
	ny := r.Config.Nyquist()
	p := r.Parameters
	if p.CarrierFrequency >= ny || p.InformationFrequency >= ny {
		return true
	}
	return p.ModulationIndex > 0 && p.CarrierFrequency+p.InformationFrequency >= ny
}

// SpectrumRange returns the frequency axis and c's spectrum restricted to
// [loHz, hiHz]. The slices alias the result.
func (r *Result) SpectrumRange(c Channel, loHz, hiHz float64) ([]float64, []float64, error) {
	return axis.Range(r.Frequency, c.Spectrum, loHz, hiHz)
}

// Sidebands measures carrier and sideband levels of the modulated spectrum.
func (r *Result) Sidebands() frequency.Sidebands {
	p := r.Parameters
	return frequency.FindSidebands(r.Modulated.Spectrum, r.Config.BinWidth(), p.CarrierFrequency, p.InformationFrequency)
}
