// Command wininfo prints spectral properties of the analysis windows amplot
// can apply before the FFT.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hamming
//	wininfo -size 1024 hann blackman
//	wininfo -periodic -size 4096
//	wininfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-am/dsp/window"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.SetFlags(0)
		log.SetPrefix("wininfo: ")
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("wininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", 4096, "window length in samples")
	list := fs.Bool("list", false, "list available window names")
	periodic := fs.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints spectral properties of the analysis windows.\n")
		fmt.Fprintf(stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wininfo hamming blackman\n")
		fmt.Fprintf(stderr, "  wininfo -size 1024 -periodic\n")
		fmt.Fprintf(stderr, "  wininfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, t := range window.Types() {
			fmt.Fprintln(stdout, t)
		}
		return nil
	}

	types := window.Types()
	if fs.NArg() > 0 {
		types = types[:0:0]
		for _, name := range fs.Args() {
			t, err := window.ParseType(name)
			if err != nil {
				return fmt.Errorf("%w (use -list to see available)", err)
			}
			types = append(types, t)
		}
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}
	return printAnalysis(stdout, types, *size, opts)
}

func printAnalysis(w io.Writer, types []window.Type, size int, opts []window.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\n")

	for _, t := range types {
		wdw, err := window.NewWindower(t, size, opts...)
		if err != nil {
			return err
		}
		coeffs := wdw.Coefficients()
		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.1f\n",
			t,
			size,
			window.CoherentGain(coeffs),
			enbw,
			window.Info(t).HighestSidelobe,
		)
	}
	return tw.Flush()
}
