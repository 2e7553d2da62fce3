// Package registry manages format-specific audio decoders and encoders.
package registry

import (
	"io"

	"github.com/zaidbabid/muda/internal/types"
)

// Decoder is the interface all format decoders implement.
type Decoder interface {
	// Decode reads the whole stream into a Signal at its native rate and
	// channel layout.
	Decode(r io.ReadSeeker, path string) (*types.Signal, error)
}

// Encoder is the interface format encoders implement.
type Encoder interface {
	// Encode writes sig to w as integer PCM with the given bit depth.
	Encode(w io.WriteSeeker, sig *types.Signal, bitDepth int) error
}

// decoders maps formats to their decoders.
var decoders = make(map[types.Format]Decoder)

// encoders maps formats to their encoders.
var encoders = make(map[types.Format]Encoder)

// Register registers a decoder for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, decoder Decoder) {
	decoders[format] = decoder
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.Format) Decoder {
	return decoders[format]
}

// RegisterEncoder registers an encoder for a format.
func RegisterEncoder(format types.Format, encoder Encoder) {
	encoders[format] = encoder
}

// GetEncoder returns the encoder for a given format, or nil.
func GetEncoder(format types.Format) Encoder {
	return encoders[format]
}
