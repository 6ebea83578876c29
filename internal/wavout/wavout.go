// Package wavout writes synthesized signals as 16-bit PCM WAV files.
package wavout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-am/dsp/signal"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth = 16
	fullCode = 1<<(bitDepth-1) - 1

	// Headroom is the peak each channel is normalized to.
	Headroom = 0.9
)

var (
	ErrNoChannels        = errors.New("wavout: no channels")
	ErrMismatchedLength  = errors.New("wavout: channels differ in length")
	ErrInvalidSampleRate = errors.New("wavout: sample rate must be > 0")
)

// WriteFile creates path and encodes the channels into it.
func WriteFile(path string, sampleRate int, channels ...[]float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, sampleRate, channels...)
}

// Encode writes the channels interleaved into one WAV stream. Every channel
// is normalized to [Headroom] independently and quantized to 16 bits.
func Encode(ws io.WriteSeeker, sampleRate int, channels ...[]float64) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	n := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != n {
			return ErrMismatchedLength
		}
	}

	numChans := len(channels)
	data := make([]int, n*numChans)
	for c, ch := range channels {
		norm, err := signal.Normalize(ch, Headroom)
		if err != nil {
			return fmt.Errorf("wavout: channel %d: %w", c, err)
		}
		for i, v := range norm {
			data[i*numChans+c] = int(math.Round(v * fullCode))
		}
	}

	enc := wav.NewEncoder(ws, sampleRate, bitDepth, numChans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavout: %w", err)
	}
	return enc.Close()
}
