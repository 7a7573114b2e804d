package compose

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	apperrors "github.com/avolkov/tunesmith/internal/errors"
	"github.com/avolkov/tunesmith/internal/mix"
	"github.com/avolkov/tunesmith/internal/rhythm"
	"github.com/avolkov/tunesmith/internal/theory"
)

// SampleRate is the fixed output rate in Hz.
const SampleRate = 44100

// Request describes one generation request. Key is a bare root pitch class
// ("C", "F#", "Bb") with no quality suffix. Tempo overrides the genre's base
// tempo when positive. Seed makes output reproducible; zero picks a
// time-based seed.
type Request struct {
	Genre           string
	Mood            string
	DurationSeconds int
	Key             string
	Tempo           float64
	Structure       string
	Seed            int64
}

// Result carries the final mix and the resolved profile for reporting.
type Result struct {
	Samples    []int16
	SampleRate int
	Genre      Genre
	Mood       Mood
	Tempo      float64
	Seed       int64
}

// Engine generates complete mixes from requests. Safe for concurrent use:
// all per-request state lives in the Arrangement.
type Engine struct {
	sampleRate int
}

// NewEngine creates an engine at the standard 44.1 kHz rate.
func NewEngine() *Engine {
	return &Engine{sampleRate: SampleRate}
}

// Per-layer seed offsets keep layer output identical regardless of
// goroutine scheduling.
const (
	seedBass = iota + 1
	seedChords
	seedMelody
	seedPad
	seedDrums
)

// Generate validates the request, resolves the genre/mood profile, builds
// the arrangement, renders the layers concurrently and mixes them down.
// Validation and synthesis failures abort the whole request; no partial
// audio is ever returned.
func (e *Engine) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.DurationSeconds <= 0 {
		return nil, apperrors.NewInvalidRequestError("duration_seconds", "must be positive")
	}
	if req.Tempo < 0 {
		return nil, apperrors.NewInvalidRequestError("tempo", "must be positive")
	}

	genre, cfg := ResolveGenre(req.Genre)
	mood, moodCfg := ResolveMood(req.Mood)

	key := req.Key
	if key == "" {
		key = "C"
	}
	keyClass, err := theory.ParseClass(key)
	if err != nil {
		return nil, fmt.Errorf("resolve key: %w", err)
	}

	tempo := cfg.BaseTempo * moodCfg.TempoMult
	if req.Tempo > 0 {
		tempo = req.Tempo
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	duration := float64(req.DurationSeconds)
	arr, err := buildArrangement(cfg, moodCfg, keyClass, tempo, duration, e.sampleRate)
	if err != nil {
		return nil, err
	}

	layers, err := e.renderLayers(ctx, arr, seed)
	if err != nil {
		return nil, err
	}

	samples, err := mix.Mixdown(layers, mix.Params{
		Brightness: moodCfg.Brightness,
		Energy:     moodCfg.Energy,
	}, e.sampleRate)
	if err != nil {
		return nil, err
	}

	return &Result{
		Samples:    samples,
		SampleRate: e.sampleRate,
		Genre:      genre,
		Mood:       mood,
		Tempo:      tempo,
		Seed:       seed,
	}, nil
}

// renderLayers runs the layer generators fork-join concurrent. Each layer
// derives its own seeded source so output is bit-identical for a given seed
// regardless of scheduling, and each checks for cancellation before doing
// any work.
func (e *Engine) renderLayers(ctx context.Context, arr *Arrangement, seed int64) (mix.Layers, error) {
	samples := int(math.Round(arr.Duration * float64(e.sampleRate)))

	type task struct {
		name string
		gen  func(*rand.Rand) (Layer, error)
		dst  *[]float64
	}

	var layers mix.Layers
	tasks := []task{
		{"bass", func(rng *rand.Rand) (Layer, error) { return generateBass(arr, rng) }, &layers.Bass},
		{"chords", func(rng *rand.Rand) (Layer, error) { return generateChords(arr, rng) }, &layers.Chords},
		{"melody", func(rng *rand.Rand) (Layer, error) { return generateMelody(arr, rng) }, &layers.Melody},
	}
	if arr.Config.Pad != "" {
		tasks = append(tasks, task{"pad", func(rng *rand.Rand) (Layer, error) { return generatePad(arr, rng) }, &layers.Pad})
	}
	if arr.Config.Drums != "" {
		tasks = append(tasks, task{"drums", func(rng *rand.Rand) (Layer, error) { return e.generateDrums(arr, rng) }, &layers.Drums})
	}

	seeds := map[string]int64{
		"bass":   seed + seedBass,
		"chords": seed + seedChords,
		"melody": seed + seedMelody,
		"pad":    seed + seedPad,
		"drums":  seed + seedDrums,
	}

	var wg sync.WaitGroup
	errs := make([]error, len(tasks))
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			layer, err := t.gen(rand.New(rand.NewSource(seeds[t.name])))
			if err != nil {
				errs[i] = fmt.Errorf("%s layer: %w", t.name, err)
				return
			}
			*t.dst = layer.fit(samples)
		}(i, t)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return mix.Layers{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return mix.Layers{}, err
	}
	return layers, nil
}

// generateDrums sums the per-voice pattern buffers into one drum layer.
func (e *Engine) generateDrums(arr *Arrangement, rng *rand.Rand) (Layer, error) {
	patterns, err := rhythm.GeneratePattern(arr.Config.Drums, arr.Duration, e.sampleRate, arr.Tempo, rng)
	if err != nil {
		return nil, fmt.Errorf("drum pattern: %w", err)
	}

	layer := newLayer(arr.Duration, e.sampleRate)
	for _, buf := range patterns {
		for i, v := range buf {
			if i >= len(layer) {
				break
			}
			layer[i] += v
		}
	}
	return layer, nil
}
