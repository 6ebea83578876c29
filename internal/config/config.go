// Package config loads amplot settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/dsp/window"
	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML file layout.
type Config struct {
	Parameters struct {
		CarrierFrequency     float64 `yaml:"carrier_frequency"`
		InformationFrequency float64 `yaml:"information_frequency"`
		ModulationIndex      float64 `yaml:"modulation_index"`
	} `yaml:"parameters"`

	Analysis struct {
		Length     int     `yaml:"length"`
		SampleRate float64 `yaml:"sample_rate"`
		Window     string  `yaml:"window"`
		Periodic   bool    `yaml:"periodic"`
		Backend    string  `yaml:"backend"`
		Parallel   bool    `yaml:"parallel"`
	} `yaml:"analysis"`

	Display struct {
		MinFrequency float64 `yaml:"min_frequency"`
		MaxFrequency float64 `yaml:"max_frequency"`
		Plot         bool    `yaml:"plot"`
		Width        int     `yaml:"width"`
		Height       int     `yaml:"height"`
	} `yaml:"display"`
}

// Default returns the settings amplot runs with when nothing is configured.
func Default() *Config {
	var c Config
	p := am.DefaultParameters()
	c.Parameters.CarrierFrequency = p.CarrierFrequency
	c.Parameters.InformationFrequency = p.InformationFrequency
	c.Parameters.ModulationIndex = p.ModulationIndex
	c.Analysis.Length = 4096
	c.Analysis.Window = window.TypeHamming.String()
	c.Analysis.Backend = spectrum.BackendAlgoFFT.String()
	c.Display.MaxFrequency = 200
	c.Display.Width = 72
	c.Display.Height = 8
	return &c
}

// Load reads filename on top of [Default]. Keys missing from the file keep
// their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML data on top of [Default]. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Params returns the modulation parameters.
func (c *Config) Params() am.Parameters {
	return am.Parameters{
		CarrierFrequency:     c.Parameters.CarrierFrequency,
		InformationFrequency: c.Parameters.InformationFrequency,
		ModulationIndex:      c.Parameters.ModulationIndex,
	}
}

// Options translates the analysis section into pipeline options.
func (c *Config) Options() ([]am.Option, error) {
	win, err := window.ParseType(c.Analysis.Window)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	backend, err := spectrum.ParseBackend(c.Analysis.Backend)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []am.Option{
		am.WithLength(c.Analysis.Length),
		am.WithSampleRate(c.Analysis.SampleRate),
		am.WithWindow(win),
		am.WithPeriodicWindow(c.Analysis.Periodic),
		am.WithBackend(backend),
		am.WithParallel(c.Analysis.Parallel),
	}, nil
}

// Validate checks the display section. Parameters and analysis settings are
// validated by the pipeline itself.
func (c *Config) Validate() error {
	d := c.Display
	if !(d.MinFrequency >= 0) || !(d.MaxFrequency > d.MinFrequency) || math.IsInf(d.MaxFrequency, 1) {
		return fmt.Errorf("config: display range must satisfy 0 <= min < max: [%g, %g]", d.MinFrequency, d.MaxFrequency)
	}
	if d.Width < 8 || d.Height < 1 {
		return fmt.Errorf("config: plot size must be at least 8x1: %dx%d", d.Width, d.Height)
	}
	return nil
}
