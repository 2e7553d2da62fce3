package muda

import (
	"fmt"
	"os"

	"github.com/zaidbabid/muda/internal/dsp"
	"github.com/zaidbabid/muda/internal/registry"
	"github.com/zaidbabid/muda/internal/types"
)

// Signal is an alias to types.Signal.
type Signal = types.Signal

// LoadAudio decodes an audio file into a Signal.
//
// Supported formats: WAV (integer PCM), FLAC, MP3. The format is detected
// from the file's magic bytes, not its extension.
//
// By default the signal is mixed down to mono at the file's native rate.
// Options are applied in this order: offset and duration at the native
// rate, then mixdown, then resampling.
//
// Example:
//
//	sig, err := muda.LoadAudio("take.wav", muda.WithSampleRate(22050))
//	if err != nil {
//		return err
//	}
//	fmt.Println(sig.Rate, sig.Duration())
func LoadAudio(path string, opts ...Option) (*Signal, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat audio: %w", err)
	}

	format, err := types.DetectFormat(f, stat.Size(), path)
	if err != nil {
		return nil, err
	}

	decoder := registry.Get(format)
	if decoder == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder for %s", format),
		}
	}

	sig, err := decoder.Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	sig = dsp.Trim(sig, options.offset, options.duration)
	if options.mono {
		sig = dsp.Mixdown(sig)
	}
	return dsp.Resample(sig, options.sampleRate), nil
}
