package theory

import (
	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

// Mode identifies a scale interval set.
type Mode string

const (
	ModeMajor           Mode = "major"
	ModeMinor           Mode = "minor"
	ModeDorian          Mode = "dorian"
	ModePhrygian        Mode = "phrygian"
	ModeLydian          Mode = "lydian"
	ModeMixolydian      Mode = "mixolydian"
	ModeLocrian         Mode = "locrian"
	ModePentatonicMajor Mode = "pentatonic_major"
	ModePentatonicMinor Mode = "pentatonic_minor"
	ModeBlues           Mode = "blues"
	ModeHarmonicMinor   Mode = "harmonic_minor"
	ModeMelodicMinor    Mode = "melodic_minor"
	ModeWholeTone       Mode = "whole_tone"
	ModeChromatic       Mode = "chromatic"
)

var scaleIntervals = map[Mode][]int{
	ModeMajor:           {0, 2, 4, 5, 7, 9, 11},
	ModeMinor:           {0, 2, 3, 5, 7, 8, 10},
	ModeDorian:          {0, 2, 3, 5, 7, 9, 10},
	ModePhrygian:        {0, 1, 3, 5, 7, 8, 10},
	ModeLydian:          {0, 2, 4, 6, 7, 9, 11},
	ModeMixolydian:      {0, 2, 4, 5, 7, 9, 10},
	ModeLocrian:         {0, 1, 3, 5, 6, 8, 10},
	ModePentatonicMajor: {0, 2, 4, 7, 9},
	ModePentatonicMinor: {0, 3, 5, 7, 10},
	ModeBlues:           {0, 3, 5, 6, 7, 10},
	ModeHarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	ModeMelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	ModeWholeTone:       {0, 2, 4, 6, 8, 10},
	ModeChromatic:       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// DegreeCount returns the number of scale degrees per octave for a mode.
func DegreeCount(mode Mode) (int, error) {
	intervals, ok := scaleIntervals[mode]
	if !ok {
		return 0, apperrors.NewConfigurationError("mode", string(mode))
	}
	return len(intervals), nil
}

// ScaleNotes returns the ascending pitches of a scale starting at root,
// spanning octaveSpan octaves. Pitches above MIDI 127 are truncated rather
// than wrapped.
func ScaleNotes(root Pitch, mode Mode, octaveSpan int) ([]Pitch, error) {
	intervals, ok := scaleIntervals[mode]
	if !ok {
		return nil, apperrors.NewConfigurationError("mode", string(mode))
	}

	notes := make([]Pitch, 0, len(intervals)*octaveSpan)
	for octave := 0; octave < octaveSpan; octave++ {
		for _, interval := range intervals {
			midi := root.Midi + interval + octave*12
			if midi > MidiMax {
				return notes, nil
			}
			notes = append(notes, Pitch{Midi: midi})
		}
	}
	return notes, nil
}

// Modes returns all supported scale modes.
func Modes() []Mode {
	return []Mode{
		ModeMajor, ModeMinor, ModeDorian, ModePhrygian, ModeLydian,
		ModeMixolydian, ModeLocrian, ModePentatonicMajor, ModePentatonicMinor,
		ModeBlues, ModeHarmonicMinor, ModeMelodicMinor, ModeWholeTone,
		ModeChromatic,
	}
}
