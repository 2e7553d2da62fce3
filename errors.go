package muda

import (
	"github.com/zaidbabid/muda/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// It is returned when an audio file has no registered decoder.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
// It is returned when a decoder rejects the structure of an audio file.
type CorruptedFileError = types.CorruptedFileError

// InvalidInputTypeError is an alias to types.InvalidInputTypeError.
// It is returned by LoadJamAudio for jam arguments of the wrong type.
type InvalidInputTypeError = types.InvalidInputTypeError

// KeyError is an alias to types.KeyError.
// It is returned by JamPop for keys absent from the muda sandbox.
type KeyError = types.KeyError

// Warning is an alias to types.Warning.
type Warning = types.Warning
