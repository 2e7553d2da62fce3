// Package wav decodes and encodes RIFF/WAVE PCM audio.
//
// Decoding is delegated to github.com/go-audio/wav; this package converts
// its integer buffers into normalised float signals and back.
package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/zaidbabid/muda/internal/registry"
	"github.com/zaidbabid/muda/internal/types"
)

// WAVE format tags.
const (
	formatPCM        = 0x0001
	formatFloat      = 0x0003
	formatExtensible = 0xFFFE
)

func init() {
	registry.Register(types.FormatWAV, &Decoder{})
	registry.RegisterEncoder(types.FormatWAV, &Encoder{})
}

// Decoder implements registry.Decoder for WAV files.
type Decoder struct{}

// Decode reads all PCM frames from r.
func (d *Decoder) Decode(r io.ReadSeeker, path string) (*types.Signal, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		reason := "invalid RIFF/WAVE header"
		if err := dec.Err(); err != nil {
			reason = fmt.Sprintf("%s: %v", reason, err)
		}
		return nil, &types.CorruptedFileError{Path: path, Reason: reason}
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	case formatFloat:
		return nil, &types.UnsupportedFormatError{Path: path, Reason: "IEEE float WAV data"}
	default:
		return nil, &types.UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("WAV format tag 0x%04x", dec.WavAudioFormat),
		}
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth < 8 || bitDepth > 32 {
		return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("bit depth %d", bitDepth)}
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("read PCM data: %v", err)}
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, &types.CorruptedFileError{Path: path, Reason: "missing channel count"}
	}

	data := buf.Data
	if bitDepth == 8 {
		// 8-bit WAV samples are unsigned.
		data = make([]int, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = v - 128
		}
	}

	scale := float32(int64(1) << (bitDepth - 1))
	return &types.Signal{
		Samples: types.Deinterleave(data, buf.Format.NumChannels, scale),
		Rate:    buf.Format.SampleRate,
	}, nil
}

// Encoder implements registry.Encoder for WAV files.
type Encoder struct{}

// Encode writes sig as integer PCM. Supported bit depths are 16, 24 and 32.
func (e *Encoder) Encode(w io.WriteSeeker, sig *types.Signal, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("wav: unsupported bit depth %d", bitDepth)
	}
	if sig.Channels() == 0 {
		return fmt.Errorf("wav: signal has no channels")
	}
	if sig.Rate <= 0 {
		return fmt.Errorf("wav: invalid sample rate %d", sig.Rate)
	}

	channels := sig.Channels()
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sig.Rate},
		Data:           Interleave(sig.Samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	enc := gowav.NewEncoder(w, sig.Rate, bitDepth, channels, formatPCM)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("wav: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}
	return nil
}

// Interleave converts channel-major float samples into interleaved integer
// frames at the given bit depth, clipping values outside [-1, 1).
func Interleave(samples [][]float32, bitDepth int) []int {
	channels := len(samples)
	if channels == 0 {
		return nil
	}
	frames := len(samples[0])
	for _, ch := range samples[1:] {
		frames = min(frames, len(ch))
	}
	scale := float64(int64(1) << (bitDepth - 1))
	lo, hi := -scale, scale-1

	out := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			v := math.Round(float64(samples[c][i]) * scale)
			out[i*channels+c] = int(min(max(v, lo), hi))
		}
	}
	return out
}
