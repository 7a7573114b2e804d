package compose

import (
	"fmt"
	"math/rand"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
	"github.com/avolkov/tunesmith/internal/synth"
	"github.com/avolkov/tunesmith/internal/theory"
)

// bassHit is one placed bass note relative to its chord slot.
type bassHit struct {
	beat     float64 // offset into the slot, in beats
	duration float64 // in beats
	velocity float64
	tone     int // chord-tone index, 0 = root
}

// generateBass places root-note (and, for walking bass, chord-tone) hits per
// the genre's bass style into a fresh layer.
func generateBass(arr *Arrangement, rng *rand.Rand) (Layer, error) {
	layer := newLayer(arr.Duration, arr.SampleRate)

	for _, slot := range arr.Slots {
		hits, err := bassHitsFor(arr.Config.BassStyle)
		if err != nil {
			return nil, err
		}

		root, err := bassRoot(slot)
		if err != nil {
			return nil, fmt.Errorf("bass root for slot at %.2fs: %w", slot.Start, err)
		}
		tones, err := theory.ChordNotes(root, slot.Quality, 0)
		if err != nil {
			return nil, fmt.Errorf("bass chord tones: %w", err)
		}

		for _, hit := range hits {
			at := slot.Start + hit.beat*arr.BeatDuration
			if at >= arr.Duration {
				break
			}
			pitch := tones[hit.tone%len(tones)]
			note := synth.Bass(pitch.Frequency(), hit.duration*arr.BeatDuration, hit.velocity, arr.SampleRate, rng)
			layer.add(at, arr.SampleRate, note)
		}
	}

	return layer, nil
}

// bassHitsFor returns the per-slot hit pattern for a bass style. Every style
// produces output; unknown styles are a configuration error.
func bassHitsFor(style BassStyle) ([]bassHit, error) {
	switch style {
	case BassFourOnFloor:
		// One root hit per beat at 80% of the beat length.
		return []bassHit{
			{0, 0.8, 0.8, 0}, {1, 0.8, 0.8, 0}, {2, 0.8, 0.8, 0}, {3, 0.8, 0.8, 0},
		}, nil
	case BassWalking:
		// Quarter notes cycling root-third-fifth-third.
		return []bassHit{
			{0, 0.9, 0.7, 0}, {1, 0.9, 0.7, 1}, {2, 0.9, 0.7, 2}, {3, 0.9, 0.7, 1},
		}, nil
	case BassRock:
		// Driving eighth-note roots.
		return []bassHit{
			{0, 0.4, 0.9, 0}, {0.5, 0.4, 0.9, 0}, {1, 0.4, 0.9, 0}, {1.5, 0.4, 0.9, 0},
			{2, 0.4, 0.9, 0}, {2.5, 0.4, 0.9, 0}, {3, 0.4, 0.9, 0}, {3.5, 0.4, 0.9, 0},
		}, nil
	case BassHipHop:
		// Syncopated hits on the one and the and-of-three.
		return []bassHit{
			{0, 1.5, 0.85, 0}, {2.5, 1.2, 0.85, 0},
		}, nil
	case BassClassical:
		// Half-note roots.
		return []bassHit{
			{0, 1.8, 0.6, 0}, {2, 1.8, 0.6, 0},
		}, nil
	case BassSustained:
		// One root held across the whole slot.
		return []bassHit{
			{0, 4, 0.5, 0},
		}, nil
	default:
		return nil, apperrors.NewConfigurationError("bass_style", string(style))
	}
}
