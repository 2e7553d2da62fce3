package muda

import "time"

// Option configures audio decoding in LoadAudio and LoadJamAudio.
//
// Options use the functional options pattern:
//
//	sig, err := muda.LoadAudio("take.flac",
//	    muda.WithSampleRate(22050),
//	    muda.WithOffset(30*time.Second),
//	    muda.WithDuration(10*time.Second),
//	)
type Option func(*loadOptions)

// loadOptions holds decoder configuration.
type loadOptions struct {
	sampleRate int           // Target rate (0 = native)
	mono       bool          // Average channels into one
	offset     time.Duration // Skip from the start
	duration   time.Duration // Maximum length (0 = to end)
}

// defaultOptions returns the default configuration: native rate, mono.
func defaultOptions() *loadOptions {
	return &loadOptions{
		sampleRate: 0,
		mono:       true,
	}
}

// WithSampleRate resamples the decoded signal to sr samples per second.
//
// Zero keeps the file's native rate. Resampling uses linear interpolation
// and produces ceil(n*sr/native) samples per channel.
func WithSampleRate(sr int) Option {
	return func(o *loadOptions) {
		o.sampleRate = max(sr, 0)
	}
}

// WithMono controls channel mixdown. When true (the default) all channels
// are averaged into one; when false the file's channel layout is kept.
func WithMono(mono bool) Option {
	return func(o *loadOptions) {
		o.mono = mono
	}
}

// WithOffset starts reading d into the file. Offsets past the end yield an
// empty signal.
func WithOffset(d time.Duration) Option {
	return func(o *loadOptions) {
		o.offset = max(d, 0)
	}
}

// WithDuration keeps at most d of audio after the offset.
func WithDuration(d time.Duration) Option {
	return func(o *loadOptions) {
		o.duration = max(d, 0)
	}
}
