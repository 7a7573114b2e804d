// Package compose orchestrates a full arrangement: it resolves a genre/mood
// profile and drives the bass, chord, melody, pad and drum generators that
// populate per-layer timelines, then hands the layers to the mixer.
package compose

import (
	"strings"

	"github.com/avolkov/tunesmith/internal/rhythm"
	"github.com/avolkov/tunesmith/internal/synth"
	"github.com/avolkov/tunesmith/internal/theory"
)

// Genre identifies a genre profile.
type Genre string

const (
	GenreElectronic Genre = "Electronic"
	GenreJazz       Genre = "Jazz"
	GenreClassical  Genre = "Classical"
	GenreHipHop     Genre = "Hip-Hop"
	GenreLofiHipHop Genre = "Lo-fi Hip-Hop"
	GenreRock       Genre = "Rock"
	GenreKPop       Genre = "K-Pop"
	GenreAmbient    Genre = "Ambient"
)

// Mood identifies a mood adjustment profile.
type Mood string

const (
	MoodHappy      Mood = "Happy"
	MoodSad        Mood = "Sad"
	MoodRelaxed    Mood = "Relaxed"
	MoodEnergetic  Mood = "Energetic"
	MoodMysterious Mood = "Mysterious"
)

// BassStyle identifies a bass line placement pattern.
type BassStyle string

const (
	BassFourOnFloor BassStyle = "four_on_floor"
	BassWalking     BassStyle = "walking"
	BassClassical   BassStyle = "classical"
	BassHipHop      BassStyle = "hip_hop"
	BassRock        BassStyle = "rock"
	BassSustained   BassStyle = "sustained"
)

// ChordStep is one slot of a progression, expressed as a semitone offset
// from the key root so the whole progression transposes with the key.
type ChordStep struct {
	RootOffset int
	Quality    theory.Quality
}

// GenreConfig holds the resolved per-genre capability set. Instrument, bass
// and drum styles are closed variants; Pad and Drums may be empty for genres
// without those layers.
type GenreConfig struct {
	Scale       theory.Mode
	BaseTempo   float64
	Progression []ChordStep
	BassStyle   BassStyle
	Lead        synth.Instrument
	Pad         synth.Instrument
	Drums       rhythm.Style
}

// MoodConfig holds mood adjustment parameters. MajorBias is carried as
// profile data for progression shading but does not alter placement.
type MoodConfig struct {
	TempoMult  float64
	Brightness float64
	Energy     float64
	MajorBias  float64
}

var genreConfigs = map[Genre]GenreConfig{
	GenreElectronic: {
		Scale:     theory.ModeMinor,
		BaseTempo: 128,
		Progression: []ChordStep{
			{0, theory.QualityMinor}, {5, theory.QualityMinor},
			{7, theory.QualityMinor}, {3, theory.QualityMajor},
		},
		BassStyle: BassFourOnFloor,
		Lead:      synth.InstrumentElectricPiano,
		Pad:       synth.InstrumentPad,
		Drums:     rhythm.StyleFourOnFloor,
	},
	GenreJazz: {
		Scale:     theory.ModeDorian,
		BaseTempo: 120,
		Progression: []ChordStep{
			{0, theory.QualityMin7}, {5, theory.QualityMin7},
			{7, theory.QualityDom7}, {0, theory.QualityMin7},
		},
		BassStyle: BassWalking,
		Lead:      synth.InstrumentPiano,
		Drums:     rhythm.StyleJazz,
	},
	GenreClassical: {
		Scale:     theory.ModeMajor,
		BaseTempo: 120,
		Progression: []ChordStep{
			{0, theory.QualityMajor}, {5, theory.QualityMajor},
			{7, theory.QualityMajor}, {0, theory.QualityMajor},
		},
		BassStyle: BassClassical,
		Lead:      synth.InstrumentPiano,
	},
	GenreHipHop: {
		Scale:     theory.ModePentatonicMinor,
		BaseTempo: 90,
		Progression: []ChordStep{
			{0, theory.QualityMinor}, {5, theory.QualityMinor},
			{7, theory.QualityMinor}, {0, theory.QualityMinor},
		},
		BassStyle: BassHipHop,
		Lead:      synth.InstrumentElectricPiano,
		Pad:       synth.InstrumentPad,
		Drums:     rhythm.StyleHipHop,
	},
	GenreRock: {
		Scale:     theory.ModeMinor,
		BaseTempo: 140,
		Progression: []ChordStep{
			{0, theory.QualityMinor}, {3, theory.QualityMajor},
			{10, theory.QualityMajor}, {5, theory.QualityMinor},
		},
		BassStyle: BassRock,
		Lead:      synth.InstrumentElectricPiano,
		Drums:     rhythm.StyleRock,
	},
	GenreKPop: {
		Scale:     theory.ModeMajor,
		BaseTempo: 120,
		Progression: []ChordStep{
			{0, theory.QualityMajor}, {9, theory.QualityMinor},
			{5, theory.QualityMajor}, {7, theory.QualityMajor},
		},
		BassStyle: BassFourOnFloor,
		Lead:      synth.InstrumentPiano,
		Pad:       synth.InstrumentPad,
		Drums:     rhythm.StyleFourOnFloor,
	},
	GenreAmbient: {
		Scale:     theory.ModeDorian,
		BaseTempo: 60,
		Progression: []ChordStep{
			{0, theory.QualityMinor}, {2, theory.QualityMinor},
			{5, theory.QualityMinor}, {7, theory.QualityMinor},
		},
		BassStyle: BassSustained,
		Lead:      synth.InstrumentPad,
		Pad:       synth.InstrumentPad,
	},
}

var moodConfigs = map[Mood]MoodConfig{
	MoodHappy:      {TempoMult: 1.1, Brightness: 1.2, Energy: 1.0, MajorBias: 0.3},
	MoodSad:        {TempoMult: 0.8, Brightness: 0.7, Energy: 0.6, MajorBias: -0.5},
	MoodRelaxed:    {TempoMult: 0.9, Brightness: 0.9, Energy: 0.5, MajorBias: 0.1},
	MoodEnergetic:  {TempoMult: 1.3, Brightness: 1.3, Energy: 1.4, MajorBias: 0.2},
	MoodMysterious: {TempoMult: 0.85, Brightness: 0.6, Energy: 0.8, MajorBias: -0.3},
}

var genreNames = func() map[string]Genre {
	m := make(map[string]Genre, len(genreConfigs)+1)
	for g := range genreConfigs {
		m[strings.ToLower(string(g))] = g
	}
	m[strings.ToLower(string(GenreLofiHipHop))] = GenreHipHop
	return m
}()

var moodNames = func() map[string]Mood {
	m := make(map[string]Mood, len(moodConfigs))
	for mood := range moodConfigs {
		m[strings.ToLower(string(mood))] = mood
	}
	return m
}()

// ResolveGenre looks up the profile for a genre name, case-insensitively.
// Unknown genres fall back to Electronic. Lo-fi Hip-Hop shares the Hip-Hop
// profile.
func ResolveGenre(name string) (Genre, GenreConfig) {
	genre, ok := genreNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		genre = GenreElectronic
	}
	return genre, genreConfigs[genre]
}

// ResolveMood looks up the adjustment for a mood name, case-insensitively.
// Unknown moods fall back to Happy.
func ResolveMood(name string) (Mood, MoodConfig) {
	mood, ok := moodNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		mood = MoodHappy
	}
	return mood, moodConfigs[mood]
}

// Genres returns the supported genre names in a stable order.
func Genres() []Genre {
	return []Genre{
		GenreElectronic, GenreJazz, GenreClassical, GenreHipHop,
		GenreLofiHipHop, GenreRock, GenreKPop, GenreAmbient,
	}
}

// Moods returns the supported mood names in a stable order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodRelaxed, MoodEnergetic, MoodMysterious}
}
