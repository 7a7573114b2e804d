package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
)

const testSampleRate = 44100

func assertFinite(t *testing.T, buf []float64) {
	t.Helper()
	for i, v := range buf {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite sample at %d", i)
	}
}

func rms(buf []float64) float64 {
	sum := 0.0
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

func TestRender(t *testing.T) {
	instruments := []Instrument{
		InstrumentPiano, InstrumentElectricPiano, InstrumentBass, InstrumentPad,
	}

	for _, inst := range instruments {
		t.Run(string(inst), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			buf, err := Render(inst, 220.0, 0.5, 0.8, testSampleRate, rng)
			require.NoError(t, err)

			assert.Len(t, buf, int(math.Round(0.5*testSampleRate)))
			assertFinite(t, buf)
			assert.Greater(t, rms(buf), 0.0, "voice should not be silent")
		})
	}

	t.Run("UnknownInstrument_ConfigurationError", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		_, err := Render(Instrument("theremin"), 220.0, 0.5, 0.8, testSampleRate, rng)
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("ZeroDuration_Empty", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		buf, err := Render(InstrumentPiano, 220.0, 0, 0.8, testSampleRate, rng)
		require.NoError(t, err)
		assert.Empty(t, buf)
	})

	t.Run("SameSeed_Identical", func(t *testing.T) {
		a := Piano(440.0, 0.3, 0.7, testSampleRate, rand.New(rand.NewSource(7)))
		b := Piano(440.0, 0.3, 0.7, testSampleRate, rand.New(rand.NewSource(7)))
		assert.Equal(t, a, b)
	})

	t.Run("VelocityScalesLevel", func(t *testing.T) {
		loud := Bass(110.0, 0.3, 0.9, testSampleRate, rand.New(rand.NewSource(1)))
		soft := Bass(110.0, 0.3, 0.3, testSampleRate, rand.New(rand.NewSource(1)))
		assert.Greater(t, rms(loud), rms(soft))
	})
}

func TestRenderDrum(t *testing.T) {
	for _, voice := range []DrumVoice{DrumKick, DrumSnare, DrumHihat} {
		t.Run(string(voice), func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			buf := RenderDrum(voice, testSampleRate, rng)

			require.NotEmpty(t, buf)
			assertFinite(t, buf)
			assert.Greater(t, rms(buf), 0.0)
		})
	}

	t.Run("KickLongerThanHihat", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		kick := RenderDrum(DrumKick, testSampleRate, rng)
		hihat := RenderDrum(DrumHihat, testSampleRate, rng)
		assert.Greater(t, len(kick), len(hihat))
	})

	t.Run("HitsDecayTowardZero", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		kick := RenderDrum(DrumKick, testSampleRate, rng)
		head := rms(kick[:len(kick)/4])
		tail := rms(kick[3*len(kick)/4:])
		assert.Greater(t, head, tail)
	})
}
