package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-am/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithLength(1024))

	fmt.Printf("length=%d rate=%.0f bin=%.1fHz nyquist=%.0f\n",
		cfg.Length, cfg.Rate(), cfg.BinWidth(), cfg.Nyquist())

	// Output:
	// length=1024 rate=1024 bin=1.0Hz nyquist=512
}
