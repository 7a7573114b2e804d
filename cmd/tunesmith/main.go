package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/tunesmith/internal/compose"
	"github.com/avolkov/tunesmith/internal/rhythm"
	"github.com/avolkov/tunesmith/internal/server"
	"github.com/avolkov/tunesmith/internal/wavio"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunesmith",
	Short: "Generate original music from genre and mood profiles",
	Long: `Tunesmith synthesizes complete instrumental tracks from scratch:
pick a genre, a mood, a key and a duration, and get a mixed 16-bit WAV.

Pipeline: profile → chord timeline → layered synthesis → mastered mix`,
	Version: version,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a track and write it to a WAV file",
	Long: `Generate a complete track for a genre/mood pair.

Examples:
  tunesmith generate --genre electronic --mood energetic -d 30
  tunesmith generate -g jazz -m relaxed -k Eb --tempo 95 -o smoky.wav
  tunesmith generate -g hip-hop -m sad --seed 42`,
	RunE: runGenerate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON-in, WAV-out HTTP API.

Example:
  tunesmith serve --port 8080`,
	RunE: runServe,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available genres, moods and drum styles",
	RunE:  runList,
}

var (
	// generate flags
	genre    string
	mood     string
	duration int
	key      string
	tempo    float64
	seed     int64
	output   string

	// serve flags
	port int
)

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)

	// Generate command flags
	generateCmd.Flags().StringVarP(&genre, "genre", "g", "electronic", "Genre profile (electronic, jazz, classical, hip-hop, rock, k-pop, ambient)")
	generateCmd.Flags().StringVarP(&mood, "mood", "m", "happy", "Mood profile (happy, sad, relaxed, energetic, mysterious)")
	generateCmd.Flags().IntVarP(&duration, "duration", "d", 30, "Track length in seconds")
	generateCmd.Flags().StringVarP(&key, "key", "k", "C", "Key root (C, F#, Bb, ...)")
	generateCmd.Flags().Float64Var(&tempo, "tempo", 0, "Tempo in BPM (0 = use genre/mood default)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (0 = time-based)")
	generateCmd.Flags().StringVarP(&output, "output", "o", "out.wav", "Output WAV file")

	// Serve command flags
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
		cancel()
	}()

	engine := compose.NewEngine()
	start := time.Now()

	result, err := engine.Generate(ctx, compose.Request{
		Genre:           genre,
		Mood:            mood,
		DurationSeconds: duration,
		Key:             key,
		Tempo:           tempo,
		Seed:            seed,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := wavio.WriteFile(output, result.Samples, result.SampleRate); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("Wrote %s: %s / %s, %.0f BPM, %ds, seed %d (%.1fs)\n",
		output, result.Genre, result.Mood, result.Tempo,
		duration, result.Seed, time.Since(start).Seconds())
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(server.Config{Port: port})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return srv.Run()
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Println("Genres:")
	for _, g := range compose.Genres() {
		fmt.Printf("  %s\n", g)
	}
	fmt.Println("\nMoods:")
	for _, m := range compose.Moods() {
		fmt.Printf("  %s\n", m)
	}
	fmt.Println("\nDrum styles:")
	for _, s := range rhythm.Styles() {
		fmt.Printf("  %s\n", s)
	}
	return nil
}
