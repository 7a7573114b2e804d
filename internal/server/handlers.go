package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/tunesmith/internal/compose"
	apperrors "github.com/avolkov/tunesmith/internal/errors"
	"github.com/avolkov/tunesmith/internal/rhythm"
	"github.com/avolkov/tunesmith/internal/wavio"
)

const maxRequestBody = 64 * 1024

// generateRequest is the JSON body of POST /generate.
type generateRequest struct {
	Genre           string  `json:"genre"`
	Mood            string  `json:"mood"`
	DurationSeconds int     `json:"duration_seconds"`
	Key             string  `json:"key"`
	Tempo           float64 `json:"tempo"`
	Seed            int64   `json:"seed"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleProfiles lists the supported genres, moods and drum styles.
func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"genres":      compose.Genres(),
		"moods":       compose.Moods(),
		"drum_styles": rhythm.Styles(),
	})
}

// handleGenerate renders one request to a WAV response. Invalid requests get
// 400, profile resolution failures 422, synthesis failures 500.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	start := time.Now()
	s.logger.Info("generate request",
		"id", id,
		"genre", body.Genre,
		"mood", body.Mood,
		"duration", body.DurationSeconds,
		"seed", body.Seed)

	result, err := s.engine.Generate(r.Context(), compose.Request{
		Genre:           body.Genre,
		Mood:            body.Mood,
		DurationSeconds: body.DurationSeconds,
		Key:             body.Key,
		Tempo:           body.Tempo,
		Seed:            body.Seed,
	})
	if err != nil {
		s.logger.Error("generate failed", "id", id, "error", err)
		s.jsonError(w, err.Error(), statusFor(err))
		return
	}

	// The wav encoder needs a seeker to patch chunk sizes, so render to a
	// temp file and serve that.
	tmp, err := os.CreateTemp("", "tunesmith-*.wav")
	if err != nil {
		s.jsonError(w, "failed to stage output", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := wavio.Write(tmp, result.Samples, result.SampleRate); err != nil {
		s.logger.Error("wav encode failed", "id", id, "error", err)
		s.jsonError(w, "failed to encode audio", http.StatusInternalServerError)
		return
	}

	s.logger.Info("generate complete",
		"id", id,
		"samples", len(result.Samples),
		"tempo", result.Tempo,
		"elapsed", time.Since(start))

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".wav"))
	http.ServeContent(w, r, id+".wav", time.Time{}, tmp)
}

// statusFor maps engine error types to HTTP status codes.
func statusFor(err error) int {
	var invalid *apperrors.InvalidRequestError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	if apperrors.IsConfiguration(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
