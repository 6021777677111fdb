package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"screening-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "gpt-4o-mini", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL
	return client, srv
}

func TestScoreResumeReturnsContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format, got %q", req.ResponseFormat.Type)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ats_score\":80}"}}]}`))
	})

	raw, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", JobRole: "Data Engineer"})
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected valid JSON, got %q", raw)
	}
}

func TestScoreResumeRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`))
	})

	_, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", JobRole: "Data Engineer"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *llm.StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", statusErr.Code)
	}
	if !statusErr.Transient() {
		t.Fatalf("expected 429 to be transient")
	}
	if statusErr.RetryAfter != 7*time.Second {
		t.Fatalf("expected Retry-After hint of 7s, got %v", statusErr.RetryAfter)
	}
}

func TestScoreResumeServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", JobRole: "Data Engineer"})
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *llm.StatusError, got %T: %v", err, err)
	}
	if !statusErr.Transient() {
		t.Fatalf("expected 5xx to be transient")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "model", time.Second); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "", time.Second); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
