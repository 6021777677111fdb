package screening

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"screening-backend/internal/llm"
)

type scriptedClient struct {
	calls   int
	results []error
	payload json.RawMessage
}

func (s *scriptedClient) ScoreResume(ctx context.Context, input llm.ScoreInput) (json.RawMessage, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.results) && s.results[idx] != nil {
		return nil, s.results[idx]
	}
	return s.payload, nil
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	stub := &scriptedClient{
		results: []error{
			&llm.StatusError{Code: 500, Message: "upstream blew up"},
			&llm.StatusError{Code: 503, Message: "still down"},
			nil,
		},
		payload: json.RawMessage(`{"ats_score": 70}`),
	}
	rc := newRetryingClient(stub, 3, time.Millisecond, 0)
	rc.sleep = noSleep

	raw, err := rc.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "x", JobRole: "Software Developer"})
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if string(raw) != `{"ats_score": 70}` {
		t.Fatalf("unexpected payload %s", raw)
	}
	if stub.calls != 3 {
		t.Fatalf("calls = %d, want 3", stub.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	boom := &llm.StatusError{Code: 503, Message: "unavailable"}
	stub := &scriptedClient{results: []error{boom, boom, boom, boom}}
	rc := newRetryingClient(stub, 3, time.Millisecond, 0)
	rc.sleep = noSleep

	_, err := rc.ScoreResume(context.Background(), llm.ScoreInput{})
	var se *llm.StatusError
	if !errors.As(err, &se) || se.Code != 503 {
		t.Fatalf("expected 503 status error, got %v", err)
	}
	if stub.calls != 3 {
		t.Fatalf("calls = %d, want 3", stub.calls)
	}
}

func TestRetryNeverRepeatsNonTransient(t *testing.T) {
	stub := &scriptedClient{results: []error{&llm.StatusError{Code: 401, Message: "bad key"}}}
	rc := newRetryingClient(stub, 3, time.Millisecond, 0)
	rc.sleep = noSleep

	if _, err := rc.ScoreResume(context.Background(), llm.ScoreInput{}); err == nil {
		t.Fatal("expected error")
	}
	if stub.calls != 1 {
		t.Fatalf("calls = %d, want 1 for non-transient failure", stub.calls)
	}
}

func TestRetryHonorsRetryAfterHint(t *testing.T) {
	stub := &scriptedClient{
		results: []error{&llm.StatusError{Code: 429, Message: "slow down", RetryAfter: 7 * time.Second}, nil},
		payload: json.RawMessage(`{}`),
	}
	rc := newRetryingClient(stub, 3, time.Millisecond, 0)
	var slept []time.Duration
	rc.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	if _, err := rc.ScoreResume(context.Background(), llm.ScoreInput{}); err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if len(slept) != 1 || slept[0] != 7*time.Second {
		t.Fatalf("slept %v, want one 7s wait from the hint", slept)
	}
}

func TestRetryStopsWhenContextCancelled(t *testing.T) {
	stub := &scriptedClient{results: []error{
		&llm.StatusError{Code: 500, Message: "boom"},
		&llm.StatusError{Code: 500, Message: "boom"},
	}}
	rc := newRetryingClient(stub, 3, time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rc.ScoreResume(ctx, llm.ScoreInput{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("calls = %d, want 1 before cancellation stops retries", stub.calls)
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&llm.StatusError{Code: 429}, true},
		{&llm.StatusError{Code: 500}, true},
		{&llm.StatusError{Code: 400}, false},
		{&llm.StatusError{Code: 401}, false},
		{context.DeadlineExceeded, true},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("invalid api key"), false},
	}
	for _, tc := range cases {
		if got := isTransient(tc.err); got != tc.want {
			t.Errorf("isTransient(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
