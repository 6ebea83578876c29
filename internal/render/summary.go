package render

import (
	"io"

	"github.com/cwbudde/algo-am/dsp/am"
	freqstats "github.com/cwbudde/algo-am/stats/frequency"
	timestats "github.com/cwbudde/algo-am/stats/time"
	"gopkg.in/yaml.v3"
)

// Summary is the machine-readable digest of an analysis.
type Summary struct {
	CarrierFrequency     float64 `yaml:"carrier_frequency"`
	InformationFrequency float64 `yaml:"information_frequency"`
	ModulationIndex      float64 `yaml:"modulation_index"`

	Length     int     `yaml:"length"`
	SampleRate float64 `yaml:"sample_rate"`
	BinWidth   float64 `yaml:"bin_width"`
	Window     string  `yaml:"window"`
	Backend    string  `yaml:"backend"`
	Aliased    bool    `yaml:"aliased"`

	Channels  []ChannelSummary `yaml:"channels"`
	Sidebands SidebandSummary  `yaml:"sidebands"`
}

// ChannelSummary holds the descriptors of one channel.
type ChannelSummary struct {
	Name          string  `yaml:"name"`
	RMS           float64 `yaml:"rms"`
	Peak          float64 `yaml:"peak"`
	CrestFactorDB float64 `yaml:"crest_factor_db"`
	PeakHz        float64 `yaml:"peak_hz"`
	PeakMagnitude float64 `yaml:"peak_magnitude"`
	Centroid      float64 `yaml:"centroid_hz"`
	Bandwidth     float64 `yaml:"bandwidth_hz"`
}

// SidebandSummary reports the carrier and sideband lines of the
// modulated channel. Lines outside the spectrum are nil.
type SidebandSummary struct {
	CarrierHz  *float64 `yaml:"carrier_hz,omitempty"`
	LowerHz    *float64 `yaml:"lower_hz,omitempty"`
	UpperHz    *float64 `yaml:"upper_hz,omitempty"`
	LowerRelDB *float64 `yaml:"lower_rel_db,omitempty"`
	UpperRelDB *float64 `yaml:"upper_rel_db,omitempty"`
	Depth      float64  `yaml:"depth"`
}

// Summarize computes the digest of res.
func Summarize(res *am.Result) Summary {
	binHz := res.Config.BinWidth()
	s := Summary{
		CarrierFrequency:     res.Parameters.CarrierFrequency,
		InformationFrequency: res.Parameters.InformationFrequency,
		ModulationIndex:      res.Parameters.ModulationIndex,
		Length:               res.Config.Length,
		SampleRate:           res.Config.Rate(),
		BinWidth:             binHz,
		Window:               res.Window.String(),
		Backend:              res.Backend.String(),
		Aliased:              res.Aliased(),
	}

	for _, c := range res.Channels() {
		ts := timestats.Calculate(c.Signal)
		fs := freqstats.Calculate(c.Spectrum, binHz)
		s.Channels = append(s.Channels, ChannelSummary{
			Name:          c.Name,
			RMS:           ts.RMS,
			Peak:          ts.Peak,
			CrestFactorDB: ts.CrestFactor_dB,
			PeakHz:        fs.PeakHz,
			PeakMagnitude: fs.Max,
			Centroid:      fs.Centroid,
			Bandwidth:     fs.Bandwidth,
		})
	}

	sb := res.Sidebands()
	s.Sidebands = SidebandSummary{Depth: sb.Depth}
	if sb.Carrier.Found() {
		s.Sidebands.CarrierHz = ptr(sb.Carrier.Hz)
	}
	if sb.Lower.Found() {
		s.Sidebands.LowerHz = ptr(sb.Lower.Hz)
		s.Sidebands.LowerRelDB = ptr(sb.LowerRelDB)
	}
	if sb.Upper.Found() {
		s.Sidebands.UpperHz = ptr(sb.Upper.Hz)
		s.Sidebands.UpperRelDB = ptr(sb.UpperRelDB)
	}
	return s
}

func ptr(v float64) *float64 { return &v }

// WriteYAML encodes s to w.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
