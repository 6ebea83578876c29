// Package render formats AM analysis results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/algo-am/dsp/am"
)

// Options controls the text report.
type Options struct {
	// MinFrequency and MaxFrequency bound the plotted spectrum in Hz.
	MinFrequency float64
	MaxFrequency float64
	Plot         bool
	Width        int
	Height       int
}

// DefaultOptions shows 0-200 Hz without plots.
func DefaultOptions() Options {
	return Options{MaxFrequency: 200, Width: 72, Height: 8}
}

var titles = map[string][2]string{
	am.ChannelCarrier:     {"Carrier Signal", "Carrier Spectrum"},
	am.ChannelInformation: {"Information Signal", "Information Spectrum"},
	am.ChannelModulated:   {"Modulated Signal", "Modulated Spectrum"},
}

// Renderer writes styled reports to one output.
type Renderer struct {
	w    io.Writer
	opts Options

	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	axis   lipgloss.Style
	warn   lipgloss.Style
	plot   lipgloss.Style
}

// New returns a Renderer for w. Colors are dropped when w is not a terminal.
func New(w io.Writer, opts Options) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:    w,
		opts: opts,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}),
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}),
		label: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"}),
		value: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		axis: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}),
		warn: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B35900", Dark: "#FFAF00"}),
		plot: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}),
	}
}

// Report writes the parameter block, one section per channel and the
// sideband measurement.
func (r *Renderer) Report(res *am.Result) error {
	s := Summarize(res)
	var b strings.Builder

	b.WriteString(r.title.Render("Amplitude Modulation"))
	b.WriteByte('\n')
	r.field(&b, "carrier", fmt.Sprintf("%g Hz", s.CarrierFrequency))
	r.field(&b, "information", fmt.Sprintf("%g Hz", s.InformationFrequency))
	r.field(&b, "index", fmt.Sprintf("%.2f", s.ModulationIndex))
	r.field(&b, "sampling", fmt.Sprintf("%d samples @ %g Hz, %.3f Hz/bin", s.Length, s.SampleRate, s.BinWidth))
	r.field(&b, "analysis", fmt.Sprintf("%s window, %s fft", s.Window, s.Backend))
	if s.Aliased {
		b.WriteString(r.warn.Render(fmt.Sprintf("warning: tones at or above %g Hz alias", res.Config.Nyquist())))
		b.WriteByte('\n')
	}

	for i, c := range res.Channels() {
		cs := s.Channels[i]
		t := titles[c.Name]

		b.WriteByte('\n')
		b.WriteString(r.header.Render(t[0]))
		b.WriteByte('\n')
		r.field(&b, "rms", fmt.Sprintf("%.3f", cs.RMS))
		r.field(&b, "peak", fmt.Sprintf("%.3f", cs.Peak))
		r.field(&b, "crest", fmt.Sprintf("%.2f dB", cs.CrestFactorDB))
		if r.opts.Plot {
			r.plotLines(&b, Trace(c.Signal, r.opts.Width, r.opts.Height))
			r.axisLine(&b, "Time (s)", res.Time[0], res.Time[len(res.Time)-1])
		}

		b.WriteString(r.header.Render(t[1]))
		b.WriteByte('\n')
		r.field(&b, "peak", fmt.Sprintf("%.1f Hz (%.1f)", cs.PeakHz, cs.PeakMagnitude))
		r.field(&b, "centroid", fmt.Sprintf("%.1f Hz", cs.Centroid))
		r.field(&b, "bandwidth", fmt.Sprintf("%.2f Hz", cs.Bandwidth))
		if r.opts.Plot {
			freq, mag, err := res.SpectrumRange(c, r.opts.MinFrequency, r.opts.MaxFrequency)
			if err != nil {
				return err
			}
			if len(freq) > 0 {
				r.plotLines(&b, Bars(mag, r.opts.Width, r.opts.Height))
				r.axisLine(&b, "Frequency (Hz)", freq[0], freq[len(freq)-1])
			}
		}
	}

	sb := s.Sidebands
	b.WriteByte('\n')
	b.WriteString(r.header.Render("Sidebands"))
	b.WriteByte('\n')
	r.field(&b, "lower", formatLine(sb.LowerHz, sb.LowerRelDB))
	r.field(&b, "upper", formatLine(sb.UpperHz, sb.UpperRelDB))
	r.field(&b, "depth", fmt.Sprintf("%.2f", sb.Depth))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func formatLine(hz, relDB *float64) string {
	if hz == nil {
		return "outside the spectrum"
	}
	return fmt.Sprintf("%.1f Hz (%.2f dB)", *hz, *relDB)
}

func (r *Renderer) field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", r.label.Render(fmt.Sprintf("%-12s", name)), r.value.Render(value))
}

func (r *Renderer) plotLines(b *strings.Builder, plot string) {
	for _, line := range strings.Split(plot, "\n") {
		b.WriteString("  ")
		b.WriteString(r.plot.Render(line))
		b.WriteByte('\n')
	}
}

func (r *Renderer) axisLine(b *strings.Builder, name string, lo, hi float64) {
	left := fmt.Sprintf("%g", lo)
	right := fmt.Sprintf("%g", hi)
	gap := r.opts.Width - len(left) - len(right) - len(name)
	pad := max(gap/2, 1)
	line := left + strings.Repeat(" ", pad) + name + strings.Repeat(" ", max(gap-pad, 1)) + right
	b.WriteString("  ")
	b.WriteString(r.axis.Render(line))
	b.WriteByte('\n')
}
