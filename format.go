package muda

import (
	"io"

	"github.com/zaidbabid/muda/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatWAV     = types.FormatWAV
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
	FormatOgg     = types.FormatOgg
	FormatOpus    = types.FormatOpus
	FormatAIFF    = types.FormatAIFF
	FormatM4A     = types.FormatM4A
)

// DetectFormat is a wrapper around types.DetectFormat.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
