package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleNotes(t *testing.T) {
	t.Run("MajorDegrees", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		notes, err := ScaleNotes(root, ModeMajor, 1)
		require.NoError(t, err)

		var names []string
		for _, n := range notes {
			names = append(names, n.Name())
		}
		assert.Equal(t, []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}, names)
	})

	t.Run("SpanMultipliesDegrees", func(t *testing.T) {
		root, err := Parse("A2")
		require.NoError(t, err)
		notes, err := ScaleNotes(root, ModePentatonicMinor, 3)
		require.NoError(t, err)

		count, err := DegreeCount(ModePentatonicMinor)
		require.NoError(t, err)
		assert.Len(t, notes, count*3)
	})

	t.Run("TruncatesAboveRange", func(t *testing.T) {
		root, err := FromMidi(120)
		require.NoError(t, err)
		notes, err := ScaleNotes(root, ModeMajor, 2)
		require.NoError(t, err)

		require.NotEmpty(t, notes)
		for _, n := range notes {
			assert.LessOrEqual(t, n.Midi, 127)
		}
	})

	t.Run("UnknownMode_Errors", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		_, err = ScaleNotes(root, Mode("klezmer"), 1)
		assert.Error(t, err)
	})

	t.Run("AscendingWithinSpan", func(t *testing.T) {
		root, err := Parse("D3")
		require.NoError(t, err)
		notes, err := ScaleNotes(root, ModeDorian, 2)
		require.NoError(t, err)
		for i := 1; i < len(notes); i++ {
			assert.Greater(t, notes[i].Midi, notes[i-1].Midi)
		}
	})
}

func TestChordNotes(t *testing.T) {
	t.Run("MajorTriad", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		notes, err := ChordNotes(root, QualityMajor, 0)
		require.NoError(t, err)

		var midis []int
		for _, n := range notes {
			midis = append(midis, n.Midi)
		}
		assert.Equal(t, []int{60, 64, 67}, midis)
	})

	t.Run("Min7", func(t *testing.T) {
		root, err := Parse("D3")
		require.NoError(t, err)
		notes, err := ChordNotes(root, QualityMin7, 0)
		require.NoError(t, err)

		var midis []int
		for _, n := range notes {
			midis = append(midis, n.Midi)
		}
		assert.Equal(t, []int{50, 53, 57, 60}, midis)
	})

	t.Run("FirstInversion_LiftsBottom", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		notes, err := ChordNotes(root, QualityMajor, 1)
		require.NoError(t, err)

		var midis []int
		for _, n := range notes {
			midis = append(midis, n.Midi)
		}
		assert.Equal(t, []int{64, 67, 72}, midis)
	})

	t.Run("InversionCyclesChordSize", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		plain, err := ChordNotes(root, QualityMajor, 0)
		require.NoError(t, err)
		cycled, err := ChordNotes(root, QualityMajor, 3)
		require.NoError(t, err)

		// A full cycle of a triad moves everything up an octave.
		require.Len(t, cycled, len(plain))
		for i := range plain {
			assert.Equal(t, plain[i].Midi+12, cycled[i].Midi)
		}
	})

	t.Run("InversionPastRange_Errors", func(t *testing.T) {
		root, err := FromMidi(124)
		require.NoError(t, err)
		_, err = ChordNotes(root, QualityMajor, 1)
		assert.Error(t, err)
	})

	t.Run("UnknownQuality_Errors", func(t *testing.T) {
		root, err := Parse("C4")
		require.NoError(t, err)
		_, err = ChordNotes(root, Quality("power5"), 0)
		assert.Error(t, err)
	})
}
