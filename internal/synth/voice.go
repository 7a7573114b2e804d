package synth

import (
	"math"
	"math/rand"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

// Instrument identifies a melodic voice timbre.
type Instrument string

const (
	InstrumentPiano         Instrument = "piano"
	InstrumentElectricPiano Instrument = "electric_piano"
	InstrumentBass          Instrument = "bass"
	InstrumentPad           Instrument = "pad"
)

const twoPi = 2 * math.Pi

// Render synthesizes a note for the given instrument. Unknown instruments
// are a configuration error, never substituted.
func Render(inst Instrument, frequency, duration, velocity float64, sampleRate int, rng *rand.Rand) ([]float64, error) {
	switch inst {
	case InstrumentPiano:
		return Piano(frequency, duration, velocity, sampleRate, rng), nil
	case InstrumentElectricPiano:
		return ElectricPiano(frequency, duration, velocity, sampleRate, rng), nil
	case InstrumentBass:
		return Bass(frequency, duration, velocity, sampleRate, rng), nil
	case InstrumentPad:
		return Pad(frequency, duration, velocity, sampleRate, rng), nil
	default:
		return nil, apperrors.NewConfigurationError("instrument", string(inst))
	}
}

// pianoPartials are the amplitude ratios of the six harmonic partials.
var pianoPartials = [6]float64{1.0, 0.5, 0.25, 0.125, 0.0625, 0.03125}

// Piano synthesizes an acoustic piano tone: six partials, a small
// per-note random detune on the fundamental, mild quadratic inharmonicity
// on the upper partials, and a low noise floor scaled by velocity.
func Piano(frequency, duration, velocity float64, sampleRate int, rng *rand.Rand) []float64 {
	samples := int(math.Round(duration * float64(sampleRate)))
	if samples <= 0 {
		return nil
	}

	detune := 1 + 0.001*rng.NormFloat64()

	signal := make([]float64, samples)
	for n, amp := range pianoPartials {
		mult := float64(n + 1)
		freq := frequency * detune
		if n > 0 {
			inharmonicity := 1 + 0.0001*mult*mult
			freq = frequency * mult * inharmonicity
		}
		for i := range signal {
			t := float64(i) / float64(sampleRate)
			signal[i] += amp * velocity * math.Sin(twoPi*freq*t)
		}
	}

	env := ADSR(0.01, 0.3, 0.3, 0.8, duration, sampleRate)
	for i := range signal {
		signal[i] = signal[i]*env[i] + 0.02*velocity*rng.NormFloat64()
		signal[i] *= 0.8
	}
	return signal
}

// ElectricPiano synthesizes a Rhodes-style tone: four bell-like partials
// with a 5 Hz tremolo.
func ElectricPiano(frequency, duration, velocity float64, sampleRate int, _ *rand.Rand) []float64 {
	samples := int(math.Round(duration * float64(sampleRate)))
	if samples <= 0 {
		return nil
	}

	signal := make([]float64, samples)
	env := ADSR(0.01, 0.5, 0.4, 1.2, duration, sampleRate)
	for i := range signal {
		t := float64(i) / float64(sampleRate)
		s := 0.8*velocity*math.Sin(twoPi*frequency*t) +
			0.3*velocity*math.Sin(twoPi*frequency*2*t) +
			0.15*velocity*math.Sin(twoPi*frequency*3*t) +
			0.1*velocity*math.Sin(twoPi*frequency*4*t)
		tremolo := 1 + 0.1*math.Sin(twoPi*5*t)
		signal[i] = s * tremolo * env[i] * 0.6
	}
	return signal
}

// Bass synthesizes a bass tone: fundamental plus second and third harmonics
// and a half-frequency sub harmonic, with a fast punchy envelope.
func Bass(frequency, duration, velocity float64, sampleRate int, _ *rand.Rand) []float64 {
	samples := int(math.Round(duration * float64(sampleRate)))
	if samples <= 0 {
		return nil
	}

	signal := make([]float64, samples)
	env := ADSR(0.005, 0.1, 0.7, 0.3, duration, sampleRate)
	for i := range signal {
		t := float64(i) / float64(sampleRate)
		s := 0.8*velocity*math.Sin(twoPi*frequency*t) +
			0.4*velocity*math.Sin(twoPi*frequency*2*t) +
			0.2*velocity*math.Sin(twoPi*frequency*3*t) +
			0.3*velocity*math.Sin(twoPi*frequency*0.5*t)
		signal[i] = s * env[i] * 0.9
	}
	return signal
}

// Pad synthesizes an ambient pad: three oscillators detuned at +0.3%/0/-0.3%
// averaged, under a slow 0.1 Hz amplitude sweep and a slow envelope.
func Pad(frequency, duration, velocity float64, sampleRate int, _ *rand.Rand) []float64 {
	samples := int(math.Round(duration * float64(sampleRate)))
	if samples <= 0 {
		return nil
	}

	signal := make([]float64, samples)
	env := ADSR(0.5, 0.3, 0.8, 1.0, duration, sampleRate)
	for i := range signal {
		t := float64(i) / float64(sampleRate)
		osc := (math.Sin(twoPi*frequency*t) +
			math.Sin(twoPi*frequency*1.003*t) +
			math.Sin(twoPi*frequency*0.997*t)) / 3
		sweep := 0.5 + 0.5*math.Sin(twoPi*0.1*t)
		signal[i] = velocity * osc * sweep * env[i] * 0.4
	}
	return signal
}
