package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkov/tunesmith/internal/rhythm"
	"github.com/avolkov/tunesmith/internal/synth"
)

func TestResolveGenre(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		for _, name := range []string{"jazz", "JAZZ", "Jazz", " jazz "} {
			genre, cfg := ResolveGenre(name)
			assert.Equal(t, GenreJazz, genre, "input %q", name)
			assert.Equal(t, BassWalking, cfg.BassStyle)
		}
	})

	t.Run("LofiAlias", func(t *testing.T) {
		genre, cfg := ResolveGenre("lo-fi hip-hop")
		assert.Equal(t, GenreHipHop, genre)
		assert.Equal(t, rhythm.StyleHipHop, cfg.Drums)
	})

	t.Run("UnknownFallsBack", func(t *testing.T) {
		genre, _ := ResolveGenre("zydeco")
		assert.Equal(t, GenreElectronic, genre)
	})

	t.Run("EveryGenreHasLeadAndBass", func(t *testing.T) {
		for _, g := range Genres() {
			_, cfg := ResolveGenre(string(g))
			assert.NotEmpty(t, cfg.Lead, "genre %s", g)
			assert.NotEmpty(t, cfg.BassStyle, "genre %s", g)
			assert.NotEmpty(t, cfg.Progression, "genre %s", g)
			assert.Greater(t, cfg.BaseTempo, 0.0, "genre %s", g)
		}
	})

	t.Run("LayerlessGenres", func(t *testing.T) {
		_, classical := ResolveGenre("classical")
		assert.Empty(t, classical.Drums)
		assert.Empty(t, classical.Pad)

		_, ambient := ResolveGenre("ambient")
		assert.Empty(t, ambient.Drums)
		assert.Equal(t, synth.InstrumentPad, ambient.Lead)
	})
}

func TestResolveMood(t *testing.T) {
	t.Run("KnownMood", func(t *testing.T) {
		mood, cfg := ResolveMood("energetic")
		assert.Equal(t, MoodEnergetic, mood)
		assert.Equal(t, 1.3, cfg.TempoMult)
		assert.Equal(t, 1.4, cfg.Energy)
	})

	t.Run("UnknownFallsBackToHappy", func(t *testing.T) {
		mood, cfg := ResolveMood("grumpy")
		assert.Equal(t, MoodHappy, mood)
		assert.Equal(t, 1.1, cfg.TempoMult)
	})
}
