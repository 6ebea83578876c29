package am

import "math"

// Parameters are the inputs of one analysis run.
type Parameters struct {
	CarrierFrequency     float64
	InformationFrequency float64
	ModulationIndex      float64
}

// DefaultParameters returns a 100 Hz carrier modulated to 50% by a 10 Hz tone.
func DefaultParameters() Parameters {
	return Parameters{
		CarrierFrequency:     100,
		InformationFrequency: 10,
		ModulationIndex:      0.5,
	}
}

// Validate rejects out-of-range values. Nothing is clamped.
func (p Parameters) Validate() error {
	if err := checkFrequency("carrier frequency", p.CarrierFrequency); err != nil {
		return err
	}
	if err := checkFrequency("information frequency", p.InformationFrequency); err != nil {
		return err
	}

	m := p.ModulationIndex
	if math.IsNaN(m) || m < 0 || m > 1 {
		return &ParameterError{Field: "modulation index", Value: m, Reason: "must be in [0, 1]"}
	}
	return nil
}

func checkFrequency(field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &ParameterError{Field: field, Value: v, Reason: "must be finite"}
	case v <= 0:
		return &ParameterError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}
