// Package synth generates raw sample buffers for melodic and percussive
// instrument voices using additive harmonic synthesis shaped by ADSR
// envelopes. All randomness (detune, noise) is drawn from an injected
// *rand.Rand so a fixed seed yields bit-identical output.
package synth

import "math"

// ADSR returns a linear attack-decay-sustain-release amplitude envelope of
// exactly round(duration*sampleRate) samples. When attack+decay+release
// exceeds the total duration, the full release length is reserved at the
// tail and the attack, then decay, are compressed from the front. No segment
// ever has negative length.
func ADSR(attack, decay, sustain, release, duration float64, sampleRate int) []float64 {
	total := int(math.Round(duration * float64(sampleRate)))
	if total <= 0 {
		return nil
	}

	if sustain < 0 {
		sustain = 0
	} else if sustain > 1 {
		sustain = 1
	}

	releaseSamples := int(release * float64(sampleRate))
	if releaseSamples > total {
		releaseSamples = total
	}
	remaining := total - releaseSamples

	attackSamples := int(attack * float64(sampleRate))
	if attackSamples > remaining {
		attackSamples = remaining
	}
	remaining -= attackSamples

	decaySamples := int(decay * float64(sampleRate))
	if decaySamples > remaining {
		decaySamples = remaining
	}
	sustainSamples := remaining - decaySamples

	env := make([]float64, total)
	idx := 0

	for i := 0; i < attackSamples; i++ {
		env[idx] = ramp(i, attackSamples, 0, 1)
		idx++
	}
	for i := 0; i < decaySamples; i++ {
		env[idx] = ramp(i, decaySamples, 1, sustain)
		idx++
	}
	for i := 0; i < sustainSamples; i++ {
		env[idx] = sustain
		idx++
	}
	for i := 0; i < releaseSamples; i++ {
		env[idx] = ramp(i, releaseSamples, sustain, 0)
		idx++
	}

	return env
}

// ramp interpolates linearly from start to end over n steps, inclusive of
// both endpoints (matching a linspace over the segment).
func ramp(i, n int, start, end float64) float64 {
	if n <= 1 {
		return start
	}
	return start + (end-start)*float64(i)/float64(n-1)
}
