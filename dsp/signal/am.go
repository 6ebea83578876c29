package signal

import "fmt"

// AMSignals holds the three time-domain sequences of an AM run.
type AMSignals struct {
	Carrier     []float64
	Information []float64
	Modulated   []float64
}

// Modulate returns (1 + index*information[i]) * carrier[i].
//
// index is not range checked; values above 1 over-modulate the carrier.
func Modulate(carrier, information []float64, index float64) ([]float64, error) {
	if len(carrier) != len(information) {
		return nil, fmt.Errorf("modulate length mismatch: %d != %d", len(carrier), len(information))
	}
	out := make([]float64, len(carrier))
	for i, c := range carrier {
		out[i] = (1 + index*information[i]) * c
	}
	return out, nil
}

// AM synthesizes unit-amplitude carrier and information tones and the
// carrier modulated by the information tone.
func (g *Generator) AM(carrierHz, informationHz, index float64, samples int) (AMSignals, error) {
	carrier, err := g.Sine(carrierHz, 1, samples)
	if err != nil {
		return AMSignals{}, fmt.Errorf("carrier: %w", err)
	}
	information, err := g.Sine(informationHz, 1, samples)
	if err != nil {
		return AMSignals{}, fmt.Errorf("information: %w", err)
	}
	modulated, err := Modulate(carrier, information, index)
	if err != nil {
		return AMSignals{}, err
	}
	return AMSignals{
		Carrier:     carrier,
		Information: information,
		Modulated:   modulated,
	}, nil
}
