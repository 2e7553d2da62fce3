// Package muda attaches decoded audio and other working data to JAMS
// annotation objects.
//
// A JAMS object (package jams) carries a free-form sandbox. muda reserves
// one entry in it, "muda", and keeps a typed Sandbox there with an ordered
// history, an ordered state list, the audio signal ("y"), its sample rate
// ("sr"), and any other keys a caller chooses to store.
//
// # Quick Start
//
// Load an annotation file together with its audio:
//
//	jam, err := muda.LoadJamAudio("track.jams", "track.wav",
//		muda.WithSampleRate(22050),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sb, _ := muda.SandboxOf(jam)
//	fmt.Printf("%d channels at %d Hz\n", len(sb.Signal), sb.Rate)
//
// Pack and pop arbitrary values:
//
//	muda.JamPack(jam, map[string]any{"pitch_shift": 2})
//	vals, err := muda.JamPop(jam, "pitch_shift")
//
// # Decoding
//
// LoadAudio decodes WAV, FLAC and MP3 files. Formats are recognised by
// their magic bytes. Ogg, Opus, AIFF and MPEG-4 files are recognised but
// fail with *UnsupportedFormatError. By default the signal is averaged to
// mono at the native sample rate; see Option for the available controls.
//
// # Error Handling
//
// Errors are typed so callers can branch with errors.As:
//
//   - *InvalidInputTypeError: LoadJamAudio received neither a path nor a jam
//   - *KeyError: JamPop asked for a key the sandbox does not hold
//   - *UnsupportedFormatError, *CorruptedFileError: decoding failed
//
// Popping from a jam that has no muda sandbox is not an error: JamPop logs
// a warning through the package logger (see SetLogger) and returns nil.
//
// JAMS objects are not safe for concurrent modification; callers that share
// one between goroutines must synchronise access themselves.
package muda
