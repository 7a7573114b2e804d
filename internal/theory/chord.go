package theory

import (
	"fmt"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

// Quality identifies a chord interval formula.
type Quality string

const (
	QualityMajor      Quality = "major"
	QualityMinor      Quality = "minor"
	QualityDiminished Quality = "diminished"
	QualityAugmented  Quality = "augmented"
	QualitySus2       Quality = "sus2"
	QualitySus4       Quality = "sus4"
	QualityMaj7       Quality = "maj7"
	QualityMin7       Quality = "min7"
	QualityDom7       Quality = "dom7"
	QualityDim7       Quality = "dim7"
	QualityHalfDim7   Quality = "half_dim7"
	QualityAug7       Quality = "aug7"
	QualityMaj9       Quality = "maj9"
	QualityMin9       Quality = "min9"
	QualityDom9       Quality = "dom9"
	QualityAdd9       Quality = "add9"
	QualityMaj11      Quality = "maj11"
	QualityMin11      Quality = "min11"
	QualityMaj13      Quality = "maj13"
	QualityMin13      Quality = "min13"
)

var chordFormulas = map[Quality][]int{
	QualityMajor:      {0, 4, 7},
	QualityMinor:      {0, 3, 7},
	QualityDiminished: {0, 3, 6},
	QualityAugmented:  {0, 4, 8},
	QualitySus2:       {0, 2, 7},
	QualitySus4:       {0, 5, 7},
	QualityMaj7:       {0, 4, 7, 11},
	QualityMin7:       {0, 3, 7, 10},
	QualityDom7:       {0, 4, 7, 10},
	QualityDim7:       {0, 3, 6, 9},
	QualityHalfDim7:   {0, 3, 6, 10},
	QualityAug7:       {0, 4, 8, 10},
	QualityMaj9:       {0, 4, 7, 11, 14},
	QualityMin9:       {0, 3, 7, 10, 14},
	QualityDom9:       {0, 4, 7, 10, 14},
	QualityAdd9:       {0, 4, 7, 14},
	QualityMaj11:      {0, 4, 7, 11, 14, 17},
	QualityMin11:      {0, 3, 7, 10, 14, 17},
	QualityMaj13:      {0, 4, 7, 11, 14, 17, 21},
	QualityMin13:      {0, 3, 7, 10, 14, 17, 21},
}

// ChordNotes returns the pitches of a chord built on root. Inversion rotates
// the lowest pitch up an octave, repeated inversion times; rotating more
// times than the chord has notes cycles through voicings again. A rotation
// that would push a pitch above MIDI 127 is rejected.
func ChordNotes(root Pitch, quality Quality, inversion int) ([]Pitch, error) {
	intervals, ok := chordFormulas[quality]
	if !ok {
		return nil, apperrors.NewConfigurationError("quality", string(quality))
	}

	notes := make([]Pitch, 0, len(intervals))
	for _, interval := range intervals {
		p, err := FromMidi(root.Midi + interval)
		if err != nil {
			return nil, fmt.Errorf("chord %s on %s: %w", quality, root.Name(), err)
		}
		notes = append(notes, p)
	}

	for i := 0; i < inversion; i++ {
		bottom := notes[0]
		lifted, err := FromMidi(bottom.Midi + 12)
		if err != nil {
			return nil, fmt.Errorf("invert chord %s on %s: %w", quality, root.Name(), err)
		}
		notes = append(notes[1:], lifted)
	}

	return notes, nil
}

// Qualities returns all supported chord qualities.
func Qualities() []Quality {
	return []Quality{
		QualityMajor, QualityMinor, QualityDiminished, QualityAugmented,
		QualitySus2, QualitySus4, QualityMaj7, QualityMin7, QualityDom7,
		QualityDim7, QualityHalfDim7, QualityAug7, QualityMaj9, QualityMin9,
		QualityDom9, QualityAdd9, QualityMaj11, QualityMin11, QualityMaj13,
		QualityMin13,
	}
}
