package compose

import (
	"fmt"

	"github.com/avolkov/tunesmith/internal/theory"
)

// ChordSlot is one resolved chord occupying a fixed span of the timeline.
type ChordSlot struct {
	Start   float64 // seconds
	Root    theory.Pitch
	Quality theory.Quality
}

// Arrangement holds everything the layer generators need for one request.
// Built once per request and discarded after mixdown.
type Arrangement struct {
	Tempo        float64
	BeatDuration float64
	Duration     float64
	SampleRate   int
	KeyClass     int         // semitone class of the key root, 0-11
	Slots        []ChordSlot // 4-beat chord slots cycling the progression
	Scale        []theory.Pitch
	Config       GenreConfig
	Mood         MoodConfig
}

// Beats per chord slot; pad slots span two of these.
const beatsPerSlot = 4

// buildArrangement resolves the chord-slot timeline and melody scale for a
// request. Chord roots transpose with the key; the progression cycles until
// the requested duration is covered.
func buildArrangement(cfg GenreConfig, mood MoodConfig, keyClass int, tempo, duration float64, sampleRate int) (*Arrangement, error) {
	beatDuration := 60.0 / tempo
	slotDuration := beatDuration * beatsPerSlot

	// Chord roots live at octave 4; bass and pad re-octave them.
	keyRoot, err := theory.FromMidi((4+1)*12 + keyClass)
	if err != nil {
		return nil, fmt.Errorf("resolve key root: %w", err)
	}

	var slots []ChordSlot
	for i := 0; float64(i)*slotDuration < duration; i++ {
		step := cfg.Progression[i%len(cfg.Progression)]
		root, err := keyRoot.Transpose(step.RootOffset)
		if err != nil {
			return nil, fmt.Errorf("transpose progression step %d: %w", i, err)
		}
		slots = append(slots, ChordSlot{
			Start:   float64(i) * slotDuration,
			Root:    root,
			Quality: step.Quality,
		})
	}

	scale, err := theory.ScaleNotes(keyRoot, cfg.Scale, 3)
	if err != nil {
		return nil, fmt.Errorf("build melody scale: %w", err)
	}

	return &Arrangement{
		Tempo:        tempo,
		BeatDuration: beatDuration,
		Duration:     duration,
		SampleRate:   sampleRate,
		KeyClass:     keyClass,
		Slots:        slots,
		Scale:        scale,
		Config:       cfg,
		Mood:         mood,
	}, nil
}

// bassRoot returns the slot's root re-octaved to octave 2 for the bass line.
func bassRoot(slot ChordSlot) (theory.Pitch, error) {
	return theory.FromMidi((2+1)*12 + slot.Root.Class())
}
