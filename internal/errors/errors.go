package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrEmptyBuffer = errors.New("empty audio buffer")
)

// ConfigurationError represents an unrecognized musical name (pitch, scale
// mode, chord quality, instrument, drum style). These fail explicitly rather
// than substituting a default frequency.
type ConfigurationError struct {
	Kind  string // "pitch", "mode", "quality", "instrument", "style", "bass_style"
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// NewConfigurationError creates a ConfigurationError
func NewConfigurationError(kind, value string) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Value: value}
}

// IsConfiguration reports whether err is a ConfigurationError
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// InvalidRequestError represents a request rejected before any buffer is
// allocated (non-positive duration, non-positive tempo).
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// NewInvalidRequestError creates an InvalidRequestError
func NewInvalidRequestError(field, reason string) *InvalidRequestError {
	return &InvalidRequestError{Field: field, Reason: reason}
}

// IsInvalidRequest reports whether err is an InvalidRequestError
func IsInvalidRequest(err error) bool {
	var re *InvalidRequestError
	return errors.As(err, &re)
}

// SynthesisError represents non-finite values appearing in a generated
// buffer. Fatal for the request; no partial audio is returned and the
// offending samples are never zeroed or clipped away.
type SynthesisError struct {
	Stage string // "mixdown", "bass", "chords", "melody", "pad", "drums"
	Index int    // sample index of the first non-finite value
	Cause error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis failure at %s: non-finite sample at index %d", e.Stage, e.Index)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

// NewSynthesisError creates a SynthesisError
func NewSynthesisError(stage string, index int) *SynthesisError {
	return &SynthesisError{Stage: stage, Index: index}
}
