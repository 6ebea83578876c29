package am

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-am/dsp/axis"
	"github.com/cwbudde/algo-am/dsp/core"
	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/cwbudde/algo-am/dsp/spectrum"
	"github.com/cwbudde/algo-am/dsp/window"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs synthesis, windowing, FFT and axis construction.
type Pipeline struct {
	cfg      core.ProcessorConfig
	parallel bool
	gen      *signal.Generator
	windower *window.Windower
	analyzer *spectrum.Analyzer
}

// New validates the configuration and prepares window coefficients and FFT
// plans.
func New(opts ...Option) (*Pipeline, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	var winOpts []window.Option
	if s.periodic {
		winOpts = append(winOpts, window.WithPeriodic())
	}
	windower, err := window.NewWindower(s.window, s.cfg.Length, winOpts...)
	if err != nil {
		if errors.Is(err, window.ErrLengthTooShort) {
			return nil, fmt.Errorf("am: %w: %w", ErrNumericAnomaly, err)
		}
		return nil, fmt.Errorf("am: %w", err)
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("am: %w: %w", ErrInvalidConfig, err)
	}

	analyzer, err := spectrum.NewAnalyzer(s.cfg.Length, spectrum.WithBackend(s.backend))
	if err != nil {
		return nil, fmt.Errorf("am: %w: %w", ErrInvalidConfig, err)
	}

	return &Pipeline{
		cfg:      s.cfg,
		parallel: s.parallel,
		gen:      signal.NewGeneratorFromConfig(s.cfg),
		windower: windower,
		analyzer: analyzer,
	}, nil
}

// Analyze runs a default-configured pipeline once.
func Analyze(p Parameters, opts ...Option) (*Result, error) {
	pl, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return pl.Analyze(p)
}

// Config returns the resolved processor configuration.
func (pl *Pipeline) Config() core.ProcessorConfig { return pl.cfg }

// Window returns the analysis window type.
func (pl *Pipeline) Window() window.Type { return pl.windower.Type() }

// Backend returns the FFT backend.
func (pl *Pipeline) Backend() spectrum.Backend { return pl.analyzer.Backend() }

// Analyze synthesizes and analyzes the three channels for p. On error no
// partial result is returned.
func (pl *Pipeline) Analyze(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := pl.cfg.Length
	sig, err := pl.gen.AM(p.CarrierFrequency, p.InformationFrequency, p.ModulationIndex, n)
	if err != nil {
		return nil, fmt.Errorf("am: synthesize: %w", err)
	}

	res := &Result{
		Parameters:  p,
		Config:      pl.cfg,
		Window:      pl.windower.Type(),
		Backend:     pl.analyzer.Backend(),
		Carrier:     Channel{Name: ChannelCarrier, Signal: sig.Carrier},
		Information: Channel{Name: ChannelInformation, Signal: sig.Information},
		Modulated:   Channel{Name: ChannelModulated, Signal: sig.Modulated},
	}

	channels := []*Channel{&res.Carrier, &res.Information, &res.Modulated}
	if pl.parallel {
		var g errgroup.Group
		for _, c := range channels {
			g.Go(func() error { return pl.analyzeChannel(c) })
		}
		err = g.Wait()
	} else {
		for _, c := range channels {
			if err = pl.analyzeChannel(c); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	rate := pl.cfg.Rate()
	if res.Time, err = axis.Time(n, rate); err != nil {
		return nil, fmt.Errorf("am: time axis: %w", err)
	}
	if res.Frequency, err = axis.Frequency(n, rate); err != nil {
		return nil, fmt.Errorf("am: frequency axis: %w", err)
	}

	return res, nil
}

func (pl *Pipeline) analyzeChannel(c *Channel) error {
	if i := core.FirstNonFinite(c.Signal); i >= 0 {
		return anomalyf("%s signal[%d] = %v", c.Name, i, c.Signal[i])
	}

	windowed, err := pl.windower.Apply(c.Signal)
	if err != nil {
		return fmt.Errorf("am: %s window: %w", c.Name, err)
	}

	mag, err := pl.analyzer.Magnitude(windowed)
	if err != nil {
		return fmt.Errorf("am: %s spectrum: %w", c.Name, err)
	}
	if i := core.FirstNonFinite(mag); i >= 0 {
		return anomalyf("%s spectrum[%d] = %v", c.Name, i, mag[i])
	}

	c.Spectrum = mag
	return nil
}
