package muda

import (
	"context"
	"fmt"

	"github.com/zaidbabid/muda/jams"
)

// LoadJamAudio loads a jam and packs it with decoded audio.
//
// jamIn is either a path to a JAMS file (string) or an already loaded
// *jams.JAMS, which is used and modified in place. Any other type fails with
// *InvalidInputTypeError before any file is touched.
//
// The audio file is decoded with LoadAudio using opts, and the result is
// packed into the muda sandbox under "y" and "sr".
//
// Example:
//
//	jam, err := muda.LoadJamAudio("track.jams", "track.flac",
//	    muda.WithSampleRate(22050),
//	)
//	if err != nil {
//		return err
//	}
//	sb, _ := muda.SandboxOf(jam)
//	fmt.Println(sb.Rate, len(sb.Signal[0]))
func LoadJamAudio(jamIn any, audioFile string, opts ...Option) (*jams.JAMS, error) {
	var jam *jams.JAMS
	switch v := jamIn.(type) {
	case string:
		loaded, err := jams.Load(v)
		if err != nil {
			return nil, fmt.Errorf("load jam: %w", err)
		}
		jam = loaded
	case *jams.JAMS:
		if v == nil {
			return nil, &InvalidInputTypeError{Type: "nil *jams.JAMS"}
		}
		jam = v
	default:
		return nil, &InvalidInputTypeError{Type: fmt.Sprintf("%T", jamIn)}
	}

	sig, err := LoadAudio(audioFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}

	return JamPack(jam, map[string]any{
		KeySignal: sig.Samples,
		KeyRate:   sig.Rate,
	}), nil
}

// LoadJamAudioContext is LoadJamAudio with a context check before starting.
//
// Decoding itself is not interruptible; the context only prevents work from
// starting once it is already cancelled.
func LoadJamAudioContext(ctx context.Context, jamIn any, audioFile string, opts ...Option) (*jams.JAMS, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadJamAudio(jamIn, audioFile, opts...)
}
