// Package theory provides pitch, scale and chord derivation for the
// composition engine. All tables are immutable and built at init; frequency
// is derived formulaically over the full MIDI range (0-127) so no lookup gap
// exists.
package theory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

// MIDI range bounds
const (
	MidiMin = 0
	MidiMax = 127
)

// Canonical note names use sharps. Flat spellings parse to the same MIDI
// value (enharmonic collision by number, not by name).
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var pitchClasses = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3, "E": 4, "F": 5,
	"F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11,
}

// Pitch is a single pitch identified by its MIDI note number.
type Pitch struct {
	Midi int
}

// FromMidi creates a Pitch from a MIDI note number, rejecting values outside
// the 0-127 range.
func FromMidi(midi int) (Pitch, error) {
	if midi < MidiMin || midi > MidiMax {
		return Pitch{}, apperrors.NewConfigurationError("pitch", fmt.Sprintf("midi %d", midi))
	}
	return Pitch{Midi: midi}, nil
}

// Parse converts a note name like "C4", "F#3" or "Bb5" to a Pitch.
func Parse(name string) (Pitch, error) {
	if len(name) < 2 {
		return Pitch{}, apperrors.NewConfigurationError("pitch", name)
	}

	// Octave is the trailing digits, possibly negative (C-1 = MIDI 0).
	i := len(name) - 1
	for i > 0 && (name[i] >= '0' && name[i] <= '9') {
		i--
	}
	if i > 0 && name[i] == '-' {
		i--
	}
	class, octavePart := name[:i+1], name[i+1:]

	classValue, ok := pitchClasses[class]
	if !ok {
		return Pitch{}, apperrors.NewConfigurationError("pitch", name)
	}
	octave, err := strconv.Atoi(octavePart)
	if err != nil {
		return Pitch{}, apperrors.NewConfigurationError("pitch", name)
	}

	return FromMidi((octave+1)*12 + classValue)
}

// ParseClass converts a bare pitch-class name like "C" or "F#" to its
// semitone value 0-11.
func ParseClass(name string) (int, error) {
	class, ok := pitchClasses[strings.TrimSpace(name)]
	if !ok {
		return 0, apperrors.NewConfigurationError("pitch", name)
	}
	return class, nil
}

// Name returns the canonical (sharp) spelling, e.g. "C#4".
func (p Pitch) Name() string {
	octave := (p.Midi / 12) - 1
	return fmt.Sprintf("%s%d", noteNames[p.Midi%12], octave)
}

// Class returns the pitch class 0-11.
func (p Pitch) Class() int {
	return p.Midi % 12
}

// Octave returns the scientific octave number (A4 = MIDI 69 = octave 4).
func (p Pitch) Octave() int {
	return (p.Midi / 12) - 1
}

// Frequency returns the equal-temperament frequency in Hz.
func (p Pitch) Frequency() float64 {
	return 440.0 * math.Pow(2, float64(p.Midi-69)/12.0)
}

// Transpose shifts the pitch by semitones, rejecting results outside the
// MIDI range.
func (p Pitch) Transpose(semitones int) (Pitch, error) {
	return FromMidi(p.Midi + semitones)
}
