package compose

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

func TestGenerate(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	t.Run("ElectronicHappy_FullTrack", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: 8,
			Key:             "C",
			Seed:            42,
		})
		require.NoError(t, err)

		assert.Equal(t, GenreElectronic, result.Genre)
		assert.Equal(t, MoodHappy, result.Mood)
		assert.Equal(t, SampleRate, result.SampleRate)
		// Exactly duration * rate samples, no partial tail.
		assert.Len(t, result.Samples, 8*SampleRate)

		// Normalization puts the peak at 0.8 of full scale; truncating
		// quantization can only land below that.
		peakLimit := int16(math.Trunc(0.8 * 32767))
		silent := true
		for _, s := range result.Samples {
			if s != 0 {
				silent = false
			}
			require.LessOrEqual(t, s, peakLimit)
			require.GreaterOrEqual(t, s, -peakLimit)
		}
		assert.False(t, silent, "track should not be silent")
	})

	t.Run("SameSeed_BitIdentical", func(t *testing.T) {
		req := Request{
			Genre:           "jazz",
			Mood:            "relaxed",
			DurationSeconds: 5,
			Key:             "Eb",
			Seed:            7,
		}
		a, err := engine.Generate(ctx, req)
		require.NoError(t, err)
		b, err := engine.Generate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, a.Samples, b.Samples)
	})

	t.Run("DifferentSeed_Differs", func(t *testing.T) {
		base := Request{
			Genre:           "hip-hop",
			Mood:            "sad",
			DurationSeconds: 5,
			Seed:            1,
		}
		a, err := engine.Generate(ctx, base)
		require.NoError(t, err)

		base.Seed = 2
		b, err := engine.Generate(ctx, base)
		require.NoError(t, err)
		assert.NotEqual(t, a.Samples, b.Samples)
	})

	t.Run("ZeroSeed_PicksOne", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "rock",
			Mood:            "energetic",
			DurationSeconds: 3,
		})
		require.NoError(t, err)
		assert.NotZero(t, result.Seed)
	})

	t.Run("UnknownGenre_FallsBackToElectronic", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "vaporwave",
			Mood:            "happy",
			DurationSeconds: 5,
			Seed:            3,
		})
		require.NoError(t, err)
		assert.Equal(t, GenreElectronic, result.Genre)
		assert.Len(t, result.Samples, 5*SampleRate)
	})

	t.Run("LofiAlias_ResolvesToHipHop", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "lo-fi hip-hop",
			Mood:            "relaxed",
			DurationSeconds: 3,
			Seed:            3,
		})
		require.NoError(t, err)
		assert.Equal(t, GenreHipHop, result.Genre)
	})

	t.Run("TempoOverride", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "classical",
			Mood:            "sad",
			DurationSeconds: 3,
			Tempo:           141,
			Seed:            3,
		})
		require.NoError(t, err)
		assert.Equal(t, 141.0, result.Tempo)
	})

	t.Run("MoodScalesTempo", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "electronic", // base 128 BPM
			Mood:            "energetic",  // 1.3x
			DurationSeconds: 3,
			Seed:            3,
		})
		require.NoError(t, err)
		assert.InDelta(t, 128*1.3, result.Tempo, 1e-9)
	})

	t.Run("ZeroDuration_InvalidRequest", func(t *testing.T) {
		_, err := engine.Generate(ctx, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: 0,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidRequest(err))
	})

	t.Run("NegativeDuration_InvalidRequest", func(t *testing.T) {
		_, err := engine.Generate(ctx, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: -4,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidRequest(err))
	})

	t.Run("NegativeTempo_InvalidRequest", func(t *testing.T) {
		_, err := engine.Generate(ctx, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: 5,
			Tempo:           -120,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidRequest(err))
	})

	t.Run("BadKey_ConfigurationError", func(t *testing.T) {
		_, err := engine.Generate(ctx, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: 5,
			Key:             "X#",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("CancelledContext_Aborts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.Generate(cancelled, Request{
			Genre:           "electronic",
			Mood:            "happy",
			DurationSeconds: 5,
			Seed:            3,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("AmbientHasNoDrums_StillRenders", func(t *testing.T) {
		result, err := engine.Generate(ctx, Request{
			Genre:           "ambient",
			Mood:            "mysterious",
			DurationSeconds: 4,
			Seed:            9,
		})
		require.NoError(t, err)
		assert.Len(t, result.Samples, 4*SampleRate)
	})
}

func TestBuildArrangement(t *testing.T) {
	t.Run("ProgressionCyclesOverDuration", func(t *testing.T) {
		cfg := genreConfigs[GenreElectronic]
		mood := moodConfigs[MoodHappy]

		// 120 BPM, 4-beat slots of 2s: a 20s request needs 10 slots, cycling
		// the 4-step progression more than twice.
		arr, err := buildArrangement(cfg, mood, 0, 120, 20, SampleRate)
		require.NoError(t, err)
		require.Len(t, arr.Slots, 10)

		assert.Equal(t, arr.Slots[0].Root.Midi, arr.Slots[4].Root.Midi)
		assert.Equal(t, arr.Slots[1].Quality, arr.Slots[5].Quality)
		assert.InDelta(t, 8.0, arr.Slots[4].Start, 1e-9)
	})

	t.Run("KeyTransposesRoots", func(t *testing.T) {
		cfg := genreConfigs[GenreElectronic]
		mood := moodConfigs[MoodHappy]

		inC, err := buildArrangement(cfg, mood, 0, 120, 8, SampleRate)
		require.NoError(t, err)
		inD, err := buildArrangement(cfg, mood, 2, 120, 8, SampleRate)
		require.NoError(t, err)

		for i := range inC.Slots {
			assert.Equal(t, inC.Slots[i].Root.Midi+2, inD.Slots[i].Root.Midi)
		}
	})
}
