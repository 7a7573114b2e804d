// Package rhythm places percussive voice hits into per-voice sample buffers
// according to a drum style's beat rules and the tempo.
package rhythm

import (
	"math"
	"math/rand"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
	"github.com/avolkov/tunesmith/internal/synth"
)

// Style identifies a drum pattern style.
type Style string

const (
	StyleFourOnFloor Style = "four_on_floor"
	StyleHipHop      Style = "hip_hop"
	StyleRock        Style = "rock"
	StyleJazz        Style = "jazz"
)

// Styles returns all supported drum styles.
func Styles() []Style {
	return []Style{StyleFourOnFloor, StyleHipHop, StyleRock, StyleJazz}
}

// GeneratePattern fills per-voice buffers of exactly duration*sampleRate
// samples with drum hits for the style. Beat placement is deterministic per
// style; hit synthesis draws noise from rng. Hits near the buffer end are
// clipped, never written past it.
func GeneratePattern(style Style, duration float64, sampleRate int, tempo float64, rng *rand.Rand) (map[synth.DrumVoice][]float64, error) {
	samples := int(math.Round(duration * float64(sampleRate)))
	beatDuration := 60.0 / tempo
	beats := int(duration / beatDuration)

	patterns := map[synth.DrumVoice][]float64{
		synth.DrumKick:  make([]float64, samples),
		synth.DrumSnare: make([]float64, samples),
		synth.DrumHihat: make([]float64, samples),
	}

	place := func(voice synth.DrumVoice, at float64, gain float64) {
		offset := int(at * float64(sampleRate))
		if offset < 0 || offset >= samples {
			return
		}
		hit := synth.RenderDrum(voice, sampleRate, rng)
		addInto(patterns[voice], offset, hit, gain)
	}

	switch style {
	case StyleFourOnFloor:
		for beat := 0; beat < beats; beat++ {
			at := float64(beat) * beatDuration
			place(synth.DrumKick, at, 1.0)
			if beat%2 == 1 {
				place(synth.DrumHihat, at, 1.0)
			}
		}

	case StyleHipHop:
		for beat := 0; beat < beats; beat++ {
			at := float64(beat) * beatDuration
			switch beat % 4 {
			case 0, 2:
				place(synth.DrumKick, at, 1.0)
			case 1, 3:
				place(synth.DrumSnare, at, 1.0)
			}
			// Hi-hats swing by a tenth of a beat on the off-beats.
			swing := 0.0
			if beat%2 == 1 {
				swing = 0.1 * beatDuration
			}
			place(synth.DrumHihat, at+swing, 1.0)
		}

	case StyleRock:
		for beat := 0; beat < beats; beat++ {
			at := float64(beat) * beatDuration
			switch beat % 4 {
			case 0, 2:
				place(synth.DrumKick, at, 1.2)
			case 1, 3:
				place(synth.DrumSnare, at, 1.3)
			}
			place(synth.DrumHihat, at, 0.8)
		}

	case StyleJazz:
		// Swung ride figure: every beat plus a pickup at two thirds of the
		// beat, with light kick and brushed snare.
		for beat := 0; beat < beats; beat++ {
			at := float64(beat) * beatDuration
			place(synth.DrumHihat, at, 1.0)
			place(synth.DrumHihat, at+beatDuration*2/3, 0.6)
			switch beat % 4 {
			case 0, 2:
				place(synth.DrumKick, at, 0.7)
			case 1, 3:
				place(synth.DrumSnare, at, 0.5)
			}
		}

	default:
		return nil, apperrors.NewConfigurationError("style", string(style))
	}

	return patterns, nil
}

// addInto sums src*gain into dst starting at offset, clipping at dst's end.
func addInto(dst []float64, offset int, src []float64, gain float64) {
	for i, v := range src {
		j := offset + i
		if j >= len(dst) {
			return
		}
		dst[j] += v * gain
	}
}
