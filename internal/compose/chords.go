package compose

import (
	"fmt"
	"math/rand"

	"github.com/avolkov/tunesmith/internal/synth"
	"github.com/avolkov/tunesmith/internal/theory"
)

// generateChords renders the harmony layer. Energetic moods arpeggiate the
// chord across one beat; calmer moods sustain a block voicing for the slot.
func generateChords(arr *Arrangement, rng *rand.Rand) (Layer, error) {
	layer := newLayer(arr.Duration, arr.SampleRate)
	slotDuration := arr.BeatDuration * beatsPerSlot

	for _, slot := range arr.Slots {
		notes, err := theory.ChordNotes(slot.Root, slot.Quality, 0)
		if err != nil {
			return nil, fmt.Errorf("chord at %.2fs: %w", slot.Start, err)
		}

		if arr.Mood.Energy > 1.0 {
			// Arpeggiated: chord notes spread evenly across one beat.
			step := arr.BeatDuration / float64(len(notes))
			for j, note := range notes {
				at := slot.Start + float64(j)*step
				if at >= arr.Duration {
					break
				}
				rendered, err := synth.Render(arr.Config.Lead, note.Frequency(), arr.BeatDuration, 0.6, arr.SampleRate, rng)
				if err != nil {
					return nil, err
				}
				layer.add(at, arr.SampleRate, rendered)
			}
		} else {
			// Block voicing held for the whole slot.
			hold := slotDuration
			if remaining := arr.Duration - slot.Start; remaining < hold {
				hold = remaining
			}
			for _, note := range notes {
				rendered, err := synth.Render(arr.Config.Lead, note.Frequency(), hold, 0.4, arr.SampleRate, rng)
				if err != nil {
					return nil, err
				}
				layer.add(slot.Start, arr.SampleRate, rendered)
			}
		}
	}

	return layer, nil
}
