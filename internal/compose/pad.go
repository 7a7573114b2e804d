package compose

import (
	"fmt"
	"math/rand"

	"github.com/avolkov/tunesmith/internal/synth"
	"github.com/avolkov/tunesmith/internal/theory"
)

// generatePad sustains chord notes an octave above the harmony over long
// 8-beat slots. Only called for genres whose profile names a pad instrument.
func generatePad(arr *Arrangement, rng *rand.Rand) (Layer, error) {
	layer := newLayer(arr.Duration, arr.SampleRate)
	slotDuration := arr.BeatDuration * beatsPerSlot * 2

	for i := 0; float64(i)*slotDuration < arr.Duration; i++ {
		start := float64(i) * slotDuration
		step := arr.Config.Progression[i%len(arr.Config.Progression)]

		// Pad chords live at octave 5 for an airy register.
		root, err := theory.FromMidi((5+1)*12 + (arr.KeyClass+step.RootOffset)%12)
		if err != nil {
			return nil, fmt.Errorf("pad root at %.2fs: %w", start, err)
		}
		notes, err := theory.ChordNotes(root, step.Quality, 0)
		if err != nil {
			return nil, fmt.Errorf("pad chord at %.2fs: %w", start, err)
		}

		hold := slotDuration
		if remaining := arr.Duration - start; remaining < hold {
			hold = remaining
		}
		for _, note := range notes {
			rendered := synth.Pad(note.Frequency(), hold, 0.3, arr.SampleRate, rng)
			layer.add(start, arr.SampleRate, rendered)
		}
	}

	return layer, nil
}
