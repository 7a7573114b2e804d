package compose

import (
	"math/rand"

	"github.com/avolkov/tunesmith/internal/synth"
)

// Phrase structure constants: 8-note phrases of nominal eighth notes, with a
// 30% chance of a note held half again as long.
const (
	phraseLength    = 8
	longNoteChance  = 0.3
	followDirChance = 0.7
	longNoteStretch = 1.5
	melodyVelocity  = 0.7
)

// generateMelody renders the lead line with a phrase state machine: the
// scale cursor perturbs at phrase starts, follows a persistent direction
// through the interior, resolves further along it at phrase ends, and the
// direction flips at every phrase boundary. Runs until the timeline is
// exhausted.
func generateMelody(arr *Arrangement, rng *rand.Rand) (Layer, error) {
	layer := newLayer(arr.Duration, arr.SampleRate)
	if len(arr.Scale) == 0 {
		return layer, nil
	}

	noteDuration := arr.BeatDuration / 2
	cursor := len(arr.Scale) / 2
	direction := 1

	instrument := arr.Config.Lead
	if instrument == synth.InstrumentPad {
		// A pad lead would smear the line; fall back to electric piano.
		instrument = synth.InstrumentElectricPiano
	}
	velocity := melodyVelocity * arr.Mood.Brightness
	if velocity > 1 {
		velocity = 1
	}

	currentTime := 0.0
	for currentTime < arr.Duration {
		for position := 0; position < phraseLength && currentTime < arr.Duration; position++ {
			switch {
			case position == 0:
				// Phrase start: bounded random perturbation in {-2..2}.
				cursor = clampIndex(cursor+rng.Intn(5)-2, len(arr.Scale))
			case position == phraseLength-1:
				// Phrase end: resolve one or two steps along the direction.
				cursor = clampIndex(cursor+direction*(1+rng.Intn(2)), len(arr.Scale))
			default:
				// Interior: follow the direction, occasionally reverse.
				step := direction * (1 + rng.Intn(2))
				if rng.Float64() >= followDirChance {
					step = -direction
				}
				cursor = clampIndex(cursor+step, len(arr.Scale))
			}

			held := noteDuration
			if rng.Float64() < longNoteChance {
				held = noteDuration * longNoteStretch
			}

			note := arr.Scale[cursor]
			rendered, err := synth.Render(instrument, note.Frequency(), held, velocity, arr.SampleRate, rng)
			if err != nil {
				return nil, err
			}
			layer.add(currentTime, arr.SampleRate, rendered)

			// Time advances by the nominal length even when the note is held
			// longer, so stretched notes overlap the next onset.
			currentTime += noteDuration
		}
		direction = -direction
	}

	return layer, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
