package muda

// Decoders and encoders register themselves with internal/registry.
import (
	_ "github.com/zaidbabid/muda/internal/flac"
	_ "github.com/zaidbabid/muda/internal/mp3"
	_ "github.com/zaidbabid/muda/internal/wav"
)
