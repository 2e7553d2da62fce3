// Package flac decodes FLAC streams using github.com/mewkiz/flac.
package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/zaidbabid/muda/internal/registry"
	"github.com/zaidbabid/muda/internal/types"
)

func init() {
	registry.Register(types.FormatFLAC, &Decoder{})
}

// Decoder implements registry.Decoder for FLAC files.
type Decoder struct{}

// Decode reads every frame of the stream.
func (d *Decoder) Decode(r io.ReadSeeker, path string) (*types.Signal, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse stream info: %v", err)}
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 || info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("stream info: %d channels, %d bits per sample", channels, info.BitsPerSample),
		}
	}
	scale := float32(int64(1) << (info.BitsPerSample - 1))

	samples := make([][]float32, channels)
	if info.NSamples > 0 {
		for c := range samples {
			samples[c] = make([]float32, 0, info.NSamples)
		}
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("decode frame: %v", err)}
		}
		if len(frame.Subframes) != channels {
			return nil, &types.CorruptedFileError{
				Path:   path,
				Reason: fmt.Sprintf("frame has %d subframes, stream has %d channels", len(frame.Subframes), channels),
			}
		}
		for c, sub := range frame.Subframes {
			for _, s := range sub.Samples {
				samples[c] = append(samples[c], float32(s)/scale)
			}
		}
	}

	return &types.Signal{Samples: samples, Rate: int(info.SampleRate)}, nil
}
