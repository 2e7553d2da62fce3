package muda

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zaidbabid/muda/internal/registry"
	"github.com/zaidbabid/muda/internal/types"
	"github.com/zaidbabid/muda/jams"
)

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	bitDepth int
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{bitDepth: 16}
}

// WithBitDepth sets the PCM bit depth of the written audio: 16 (default),
// 24 or 32.
func WithBitDepth(bits int) SaveOption {
	return func(o *saveOptions) {
		o.bitDepth = bits
	}
}

// Save writes the audio packed in jam to audioPath and the jam itself to
// jamPath.
//
// The signal is taken from the "y" and "sr" keys of the muda sandbox and
// written as WAV. The jam is written without those keys; they are packed
// back before Save returns, so jam is unchanged afterwards. A jam without a
// packed signal fails with *KeyError.
func Save(audioPath, jamPath string, jam *jams.JAMS, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	sb, ok := SandboxOf(jam)
	if !ok {
		return &KeyError{Key: KeySignal}
	}
	sig, ok := sb.Audio()
	if !ok {
		missing := KeySignal
		if sb.Has(KeySignal) {
			missing = KeyRate
		}
		return &KeyError{Key: missing}
	}

	if err := writeAudio(audioPath, sig, options.bitDepth); err != nil {
		return err
	}

	audio, err := JamPop(jam, KeySignal, KeyRate)
	if err != nil {
		return err
	}
	defer JamPack(jam, audio)

	if err := jams.Save(jam, jamPath); err != nil {
		return fmt.Errorf("save jam: %w", err)
	}
	return nil
}

func writeAudio(path string, sig *Signal, bitDepth int) error {
	format := formatForPath(path)
	encoder := registry.GetEncoder(format)
	if encoder == nil {
		return &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no encoder for %s", format),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audio: %w", err)
	}
	if err := encoder.Encode(f, sig, bitDepth); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close audio: %w", err)
	}
	return nil
}

// formatForPath maps a file extension to a format, defaulting to WAV for
// unknown extensions.
func formatForPath(path string) types.Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []types.Format{
		types.FormatWAV, types.FormatFLAC, types.FormatMP3, types.FormatOgg,
		types.FormatOpus, types.FormatAIFF, types.FormatM4A,
	} {
		for _, e := range f.Extensions() {
			if e == ext {
				return f
			}
		}
	}
	return types.FormatWAV
}
