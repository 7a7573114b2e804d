// Package mix sums the per-role layers with mood-weighted gains and applies
// the mastering chain: brightness pre-gain, soft-knee compression, a single
// 30 ms delay tap, peak normalization and 16-bit quantization. Amplitudes
// are clamped only at final quantization, never mid-pipeline.
package mix

import (
	"math"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

// Base layer gains. Bass and drums scale with mood energy, melody with mood
// brightness; chords and pad are fixed.
const (
	bassGain   = 0.4
	chordGain  = 0.25
	melodyGain = 0.5
	padGain    = 0.15
	drumGain   = 0.3
)

// Mastering constants.
const (
	kneeThreshold   = 0.7
	kneeRatio       = 4.0
	delaySeconds    = 0.03
	delayGain       = 0.2
	normalizeTarget = 0.8
	fullScale       = 32767
)

// Layers holds the per-role sample buffers of one arrangement. All non-nil
// layers must be the same length; a nil layer is an absent role.
type Layers struct {
	Bass   []float64
	Chords []float64
	Melody []float64
	Pad    []float64
	Drums  []float64
}

// Params carries the mood parameters that modulate layer gains.
type Params struct {
	Brightness float64
	Energy     float64
}

// Mixdown produces the final quantized mix. Non-finite values anywhere in
// the summed buffer abort the request; they are never zeroed or clipped.
func Mixdown(l Layers, p Params, sampleRate int) ([]int16, error) {
	n := bufferLength(l)
	if n == 0 {
		return nil, apperrors.ErrEmptyBuffer
	}

	mixed := make([]float64, n)
	accumulate(mixed, l.Bass, bassGain*p.Energy)
	accumulate(mixed, l.Chords, chordGain)
	accumulate(mixed, l.Melody, melodyGain*p.Brightness)
	accumulate(mixed, l.Pad, padGain)
	accumulate(mixed, l.Drums, drumGain*p.Energy)

	// Brightness pre-gain ahead of the compressor.
	if p.Brightness > 1.0 {
		boost := 1 + 0.1*(p.Brightness-1.0)
		for i := range mixed {
			mixed[i] *= boost
		}
	}

	for i := range mixed {
		mixed[i] = SoftKnee(mixed[i])
	}

	applyDelayTap(mixed, sampleRate)

	for i, v := range mixed {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperrors.NewSynthesisError("mixdown", i)
		}
	}

	normalize(mixed)
	return quantize(mixed), nil
}

// SoftKnee leaves |x| <= 0.7 unchanged and attenuates the excess above the
// threshold at 4:1.
func SoftKnee(x float64) float64 {
	abs := math.Abs(x)
	if abs <= kneeThreshold {
		return x
	}
	compressed := kneeThreshold + (abs-kneeThreshold)/kneeRatio
	if x < 0 {
		return -compressed
	}
	return compressed
}

// applyDelayTap adds a single non-recursive 30 ms echo of the compressed
// signal.
func applyDelayTap(buf []float64, sampleRate int) {
	delay := int(delaySeconds * float64(sampleRate))
	if delay <= 0 || delay >= len(buf) {
		return
	}
	for t := len(buf) - 1; t >= delay; t-- {
		buf[t] += delayGain * buf[t-delay]
	}
}

// normalize scales the buffer so its peak sits at 0.8 of full scale. A
// silent buffer is left untouched.
func normalize(buf []float64) {
	peak := 0.0
	for _, v := range buf {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}
	if peak == 0 {
		return
	}
	scale := normalizeTarget / peak
	for i := range buf {
		buf[i] *= scale
	}
}

// quantize converts to 16-bit signed samples, clamping exactly at ±32767.
func quantize(buf []float64) []int16 {
	out := make([]int16, len(buf))
	for i, v := range buf {
		s := v * fullScale
		if s > fullScale {
			s = fullScale
		} else if s < -fullScale {
			s = -fullScale
		}
		out[i] = int16(s)
	}
	return out
}

func bufferLength(l Layers) int {
	for _, buf := range [][]float64{l.Bass, l.Chords, l.Melody, l.Pad, l.Drums} {
		if len(buf) > 0 {
			return len(buf)
		}
	}
	return 0
}

func accumulate(dst, src []float64, gain float64) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] += gain * src[i]
	}
}
