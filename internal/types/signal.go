package types

import "time"

// Signal is a decoded audio buffer.
//
// Samples is channel-major: Samples[c][i] is sample i of channel c. Values
// are normalised to [-1, 1). Every channel has the same length.
type Signal struct {
	Samples [][]float32
	Rate    int
}

// Channels returns the number of channels.
func (s *Signal) Channels() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

// Len returns the number of samples per channel.
func (s *Signal) Len() int {
	if s == nil || len(s.Samples) == 0 {
		return 0
	}
	return len(s.Samples[0])
}

// Duration returns the playback length of the signal.
func (s *Signal) Duration() time.Duration {
	if s == nil || s.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(s.Len()) / float64(s.Rate) * float64(time.Second))
}

// Deinterleave splits interleaved frames into channel-major samples,
// scaling each value by 1/scale. Trailing samples that do not fill a whole
// frame are dropped.
func Deinterleave(data []int, channels int, scale float32) [][]float32 {
	if channels <= 0 {
		return nil
	}
	frames := len(data) / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * channels
		for c := 0; c < channels; c++ {
			out[c][i] = float32(data[base+c]) / scale
		}
	}
	return out
}
