package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-am/dsp/am"
	"github.com/go-audio/wav"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunDefaults(t *testing.T) {
	out, _, err := runArgs(t)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"Carrier Spectrum", "100.0 Hz", "depth", "0.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunYAMLWithFlags(t *testing.T) {
	out, _, err := runArgs(t, "-format", "yaml", "-carrier", "200", "-info", "20", "-backend", "gonum", "-parallel")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"carrier_frequency: 200", "information_frequency: 20", "backend: gonum", "lower_hz: 180", "upper_hz: 220"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amplot.yaml")
	data := "parameters:\n  carrier_frequency: 300\n  modulation_index: 0.2\nanalysis:\n  length: 1024\n  sample_rate: 2048\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runArgs(t, "-config", path, "-format", "yaml", "-index", "0.4")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"carrier_frequency: 300", "modulation_index: 0.4", "length: 1024", "sample_rate: 2048", "bin_width: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPlot(t *testing.T) {
	out, _, err := runArgs(t, "-plot", "-range", "50:150", "-width", "50", "-height", "3")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out, "Frequency (Hz)") || !strings.ContainsRune(out, '█') {
		t.Fatalf("plot missing:\n%s", out)
	}
}

func TestRunWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.wav")
	_, logs, err := runArgs(t, "-length", "1024", "-wav", path, "-wav-channel", "modulated")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(logs, "amplot: wrote "+path) {
		t.Fatalf("log = %q", logs)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() || dec.NumChans != 1 || dec.SampleRate != 1024 {
		t.Fatalf("wav header: valid=%v chans=%d rate=%d", dec.IsValidFile(), dec.NumChans, dec.SampleRate)
	}
}

func TestRunAliasWarningInYAML(t *testing.T) {
	_, logs, err := runArgs(t, "-format", "yaml", "-carrier", "3000")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(logs, "amplot: warning: tones at or above 2048 Hz alias") {
		t.Fatalf("log = %q", logs)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"index out of range", []string{"-index", "1.5"}, am.ErrInvalidParameter},
		{"zero carrier", []string{"-carrier", "0"}, am.ErrInvalidParameter},
		{"length not power of two", []string{"-length", "1000"}, am.ErrInvalidConfig},
		{"length one", []string{"-length", "1"}, am.ErrNumericAnomaly},
		{"help", []string{"-h"}, flag.ErrHelp},
		{"bad range", []string{"-range", "200"}, nil},
		{"inverted range", []string{"-range", "200:100"}, nil},
		{"nan range", []string{"-plot", "-range", "nan:200"}, nil},
		{"unknown window", []string{"-window", "kaiser"}, nil},
		{"unknown format", []string{"-format", "json"}, nil},
		{"unknown wav channel", []string{"-wav", "x.wav", "-wav-channel", "noise"}, nil},
		{"stray argument", []string{"extra"}, nil},
		{"missing config", []string{"-config", "does-not-exist.yaml"}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runArgs(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if out != "" {
				t.Fatalf("report written before failing:\n%s", out)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRunHugeCarrier(t *testing.T) {
	out, _, err := runArgs(t, "-format", "yaml", "-carrier", "1e19")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(out, "lower_hz") || strings.Contains(out, "upper_hz") {
		t.Fatalf("sidebands beyond the spectrum reported:\n%s", out)
	}
}
