// Command amplot synthesizes an amplitude-modulated tone and prints the
// carrier, information and modulated signals with their spectra.
//
// Usage:
//
//	amplot [flags]
//
// Settings come from the built-in defaults, then the optional -config YAML
// file, then any flag given explicitly.
//
// Examples:
//
//	amplot
//	amplot -carrier 200 -info 15 -index 0.8 -plot
//	amplot -config amplot.yaml -format yaml
//	amplot -wav am.wav -wav-channel modulated
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/cwbudde/algo-am/internal/config"
	"github.com/cwbudde/algo-am/internal/render"
	"github.com/cwbudde/algo-am/internal/wavout"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.SetFlags(0)
		log.SetPrefix("amplot: ")
		log.Fatal(err)
	}
}

type flags struct {
	configPath string
	carrier    float64
	info       float64
	index      float64
	length     int
	rate       float64
	window     string
	periodic   bool
	backend    string
	parallel   bool
	freqRange  string
	plot       bool
	width      int
	height     int
	format     string
	wavPath    string
	wavChannel string
}

func run(args []string, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "amplot: ", 0)
	def := config.Default()

	var f flags
	fs := flag.NewFlagSet("amplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML settings file")
	fs.Float64Var(&f.carrier, "carrier", def.Parameters.CarrierFrequency, "carrier frequency in Hz")
	fs.Float64Var(&f.info, "info", def.Parameters.InformationFrequency, "information frequency in Hz")
	fs.Float64Var(&f.index, "index", def.Parameters.ModulationIndex, "modulation index in [0, 1]")
	fs.IntVar(&f.length, "length", def.Analysis.Length, "samples per signal (power of two)")
	fs.Float64Var(&f.rate, "rate", def.Analysis.SampleRate, "sample rate in Hz (0 = same as -length)")
	fs.StringVar(&f.window, "window", def.Analysis.Window, "window: rectangular, hann, hamming, blackman, flattop")
	fs.BoolVar(&f.periodic, "periodic", def.Analysis.Periodic, "use periodic (FFT) window form instead of symmetric")
	fs.StringVar(&f.backend, "backend", def.Analysis.Backend, "FFT backend: algofft, gonum, godsp")
	fs.BoolVar(&f.parallel, "parallel", def.Analysis.Parallel, "analyze the three channels concurrently")
	fs.StringVar(&f.freqRange, "range", formatRange(def.Display.MinFrequency, def.Display.MaxFrequency), "plotted frequency range lo:hi in Hz")
	fs.BoolVar(&f.plot, "plot", def.Display.Plot, "draw text plots")
	fs.IntVar(&f.width, "width", def.Display.Width, "plot width in columns")
	fs.IntVar(&f.height, "height", def.Display.Height, "plot height in rows")
	fs.StringVar(&f.format, "format", "text", "output format: text or yaml")
	fs.StringVar(&f.wavPath, "wav", "", "also write the signals to this WAV file")
	fs.StringVar(&f.wavChannel, "wav-channel", "all", "WAV content: all, carrier, information or modulated")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: amplot [flags]\n\n")
		fmt.Fprintf(stderr, "Synthesizes an AM tone and prints its signals and spectra.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  amplot -carrier 200 -info 15 -index 0.8 -plot\n")
		fmt.Fprintf(stderr, "  amplot -config amplot.yaml -format yaml\n")
		fmt.Fprintf(stderr, "  amplot -wav am.wav -wav-channel modulated\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := def
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	var visitErr error
	fs.Visit(func(fl *flag.Flag) {
		if err := f.apply(cfg, fl.Name); err != nil && visitErr == nil {
			visitErr = err
		}
	})
	if visitErr != nil {
		return visitErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if f.format != "text" && f.format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", f.format)
	}
	if f.wavPath != "" && !validWAVChannel(f.wavChannel) {
		return fmt.Errorf("unknown wav channel %q (want all, %s, %s or %s)",
			f.wavChannel, am.ChannelCarrier, am.ChannelInformation, am.ChannelModulated)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	pl, err := am.New(opts...)
	if err != nil {
		return err
	}
	res, err := pl.Analyze(cfg.Params())
	if err != nil {
		return err
	}

	if f.format == "text" {
		r := render.New(stdout, render.Options{
			MinFrequency: cfg.Display.MinFrequency,
			MaxFrequency: cfg.Display.MaxFrequency,
			Plot:         cfg.Display.Plot,
			Width:        cfg.Display.Width,
			Height:       cfg.Display.Height,
		})
		if err := r.Report(res); err != nil {
			return err
		}
	} else {
		if res.Aliased() {
			logger.Printf("warning: tones at or above %g Hz alias", res.Config.Nyquist())
		}
		if err := render.WriteYAML(stdout, render.Summarize(res)); err != nil {
			return err
		}
	}

	if f.wavPath != "" {
		chans := selectChannels(res, f.wavChannel)
		rate := int(math.Round(res.Config.Rate()))
		if err := wavout.WriteFile(f.wavPath, rate, chans...); err != nil {
			return err
		}
		logger.Printf("wrote %s (%d channel(s), %d Hz)", f.wavPath, len(chans), rate)
	}
	return nil
}

// apply copies one explicitly set flag into cfg.
func (f *flags) apply(cfg *config.Config, name string) error {
	switch name {
	case "carrier":
		cfg.Parameters.CarrierFrequency = f.carrier
	case "info":
		cfg.Parameters.InformationFrequency = f.info
	case "index":
		cfg.Parameters.ModulationIndex = f.index
	case "length":
		cfg.Analysis.Length = f.length
	case "rate":
		cfg.Analysis.SampleRate = f.rate
	case "window":
		cfg.Analysis.Window = f.window
	case "periodic":
		cfg.Analysis.Periodic = f.periodic
	case "backend":
		cfg.Analysis.Backend = f.backend
	case "parallel":
		cfg.Analysis.Parallel = f.parallel
	case "range":
		lo, hi, err := parseRange(f.freqRange)
		if err != nil {
			return err
		}
		cfg.Display.MinFrequency, cfg.Display.MaxFrequency = lo, hi
	case "plot":
		cfg.Display.Plot = f.plot
	case "width":
		cfg.Display.Width = f.width
	case "height":
		cfg.Display.Height = f.height
	}
	return nil
}

func parseRange(s string) (float64, float64, error) {
	loStr, hiStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q (want lo:hi)", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(loStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(hiStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return lo, hi, nil
}

func formatRange(lo, hi float64) string {
	return strconv.FormatFloat(lo, 'g', -1, 64) + ":" + strconv.FormatFloat(hi, 'g', -1, 64)
}

func validWAVChannel(name string) bool {
	switch name {
	case "all", am.ChannelCarrier, am.ChannelInformation, am.ChannelModulated:
		return true
	}
	return false
}

func selectChannels(res *am.Result, name string) [][]float64 {
	var out [][]float64
	for _, c := range res.Channels() {
		if name == "all" || c.Name == name {
			out = append(out, c.Signal)
		}
	}
	return out
}
