// Package mp3 decodes MPEG layer III streams using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo; mono sources are
// duplicated across both channels by the decoder.
package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/zaidbabid/muda/internal/registry"
	"github.com/zaidbabid/muda/internal/types"
)

const (
	outputChannels = 2
	bytesPerFrame  = 4
)

func init() {
	registry.Register(types.FormatMP3, &Decoder{})
}

// Decoder implements registry.Decoder for MP3 files.
type Decoder struct{}

// Decode reads the full stream.
func (d *Decoder) Decode(r io.ReadSeeker, path string) (*types.Signal, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("parse header: %v", err)}
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, &types.CorruptedFileError{Path: path, Reason: fmt.Sprintf("decode frames: %v", err)}
	}

	return &types.Signal{
		Samples: pcm16ToChannels(raw),
		Rate:    dec.SampleRate(),
	}, nil
}

// pcm16ToChannels splits interleaved 16-bit little-endian stereo bytes.
func pcm16ToChannels(raw []byte) [][]float32 {
	frames := len(raw) / bytesPerFrame
	data := make([]int, frames*outputChannels)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}
	return types.Deinterleave(data, outputChannels, 32768)
}
