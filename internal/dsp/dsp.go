// Package dsp holds the sample-level transforms applied after decoding:
// trimming, channel mixdown and sample rate conversion.
package dsp

import (
	"math"
	"time"

	"github.com/zaidbabid/muda/internal/types"
)

// Trim keeps the part of sig that starts at offset and lasts at most
// duration. A zero duration keeps everything after offset. An offset past
// the end yields empty channels.
func Trim(sig *types.Signal, offset, duration time.Duration) *types.Signal {
	if offset <= 0 && duration <= 0 {
		return sig
	}
	n := sig.Len()
	start := min(samplesAt(offset, sig.Rate), n)
	end := n
	if duration > 0 {
		end = min(start+samplesAt(duration, sig.Rate), n)
	}

	out := &types.Signal{Samples: make([][]float32, len(sig.Samples)), Rate: sig.Rate}
	for c, ch := range sig.Samples {
		out.Samples[c] = ch[start:end:end]
	}
	return out
}

func samplesAt(d time.Duration, rate int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(rate)))
}

// Mixdown averages all channels into one.
func Mixdown(sig *types.Signal) *types.Signal {
	if sig.Channels() <= 1 {
		return sig
	}
	n := sig.Len()
	mono := make([]float32, n)
	for _, ch := range sig.Samples {
		for i := 0; i < n && i < len(ch); i++ {
			mono[i] += ch[i]
		}
	}
	inv := 1 / float32(sig.Channels())
	for i := range mono {
		mono[i] *= inv
	}
	return &types.Signal{Samples: [][]float32{mono}, Rate: sig.Rate}
}

// Resample converts sig to the target rate with linear interpolation.
// The output length is ceil(len * target / rate).
func Resample(sig *types.Signal, target int) *types.Signal {
	if target <= 0 || sig.Rate <= 0 || target == sig.Rate {
		return sig
	}
	n := int64(sig.Len())
	rate, to := int64(sig.Rate), int64(target)
	outLen := int((n*to + rate - 1) / rate)
	step := float64(sig.Rate) / float64(target)

	out := &types.Signal{Samples: make([][]float32, len(sig.Samples)), Rate: target}
	for c, ch := range sig.Samples {
		out.Samples[c] = interpolate(ch, outLen, step)
	}
	return out
}

// interpolate reads src at positions i*step for i in [0, outLen).
func interpolate(src []float32, outLen int, step float64) []float32 {
	dst := make([]float32, outLen)
	last := len(src) - 1
	if last < 0 {
		return dst
	}
	for i := range dst {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			dst[i] = src[last]
			continue
		}
		frac := float32(pos - float64(j))
		dst[i] = src[j] + (src[j+1]-src[j])*frac
	}
	return dst
}
