package synth

import (
	"math"
	"math/rand"
)

// DrumVoice identifies a percussive voice. Percussive voices take no
// frequency argument; each has a fixed internal duration and output gain.
type DrumVoice string

const (
	DrumKick  DrumVoice = "kick"
	DrumSnare DrumVoice = "snare"
	DrumHihat DrumVoice = "hihat"
)

// Fixed hit lengths and output gains per voice.
const (
	kickDuration  = 0.1
	kickGain      = 0.8
	snareDuration = 0.08
	snareGain     = 0.6
	hihatDuration = 0.03
	hihatGain     = 0.4
)

// Kick synthesizes a kick drum hit: an exponential pitch sweep from 80 Hz
// (decay constant 15) integrated to a phase, under an exp(-30t) envelope,
// plus a short noise click weighted by exp(-100t).
func Kick(sampleRate int, rng *rand.Rand) []float64 {
	samples := int(math.Round(kickDuration * float64(sampleRate)))
	out := make([]float64, samples)

	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		freq := 80 * math.Exp(-t*15)
		phase += twoPi * freq / float64(sampleRate)
		body := math.Sin(phase) * math.Exp(-t*30)
		click := 0.5 * rng.NormFloat64() * math.Exp(-t*100)
		out[i] = (body + click) * kickGain
	}
	return out
}

// Snare synthesizes a snare hit: a 200 Hz tone plus white noise under an
// exp(-40t) envelope.
func Snare(sampleRate int, rng *rand.Rand) []float64 {
	samples := int(math.Round(snareDuration * float64(sampleRate)))
	out := make([]float64, samples)

	for i := range out {
		t := float64(i) / float64(sampleRate)
		tone := 0.3 * math.Sin(twoPi*200*t)
		noise := 0.7 * rng.NormFloat64()
		out[i] = (tone + noise) * math.Exp(-t*40) * snareGain
	}
	return out
}

// Hihat synthesizes a hi-hat hit: first-difference (high-pass approximated)
// white noise under an exp(-150t) envelope.
func Hihat(sampleRate int, rng *rand.Rand) []float64 {
	samples := int(math.Round(hihatDuration * float64(sampleRate)))
	out := make([]float64, samples)

	prev := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		noise := 0.8 * rng.NormFloat64()
		out[i] = (noise - prev) * math.Exp(-t*150) * hihatGain
		prev = noise
	}
	return out
}

// RenderDrum synthesizes a hit for the given percussive voice.
func RenderDrum(voice DrumVoice, sampleRate int, rng *rand.Rand) []float64 {
	switch voice {
	case DrumKick:
		return Kick(sampleRate, rng)
	case DrumSnare:
		return Snare(sampleRate, rng)
	case DrumHihat:
		return Hihat(sampleRate, rng)
	default:
		return nil
	}
}
