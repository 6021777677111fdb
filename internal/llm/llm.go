package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Client abstracts LLM providers for resume scoring.
type Client interface {
	ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error)
}

// ScoreInput captures the inputs needed for one scoring call.
type ScoreInput struct {
	ResumeText string
	JobRole    string
}

// StatusError is an HTTP-status failure from a provider. RetryAfter carries
// the provider's delay hint when one was given.
type StatusError struct {
	Code       int
	Message    string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm provider http status %d: %s", e.Code, e.Message)
}

// Transient reports whether the failure is worth retrying.
func (e *StatusError) Transient() bool {
	return e.Code == 429 || e.Code >= 500
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation for missing provider wiring.
type PlaceholderClient struct{}

// ScoreResume returns ErrNotConfigured.
func (PlaceholderClient) ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
