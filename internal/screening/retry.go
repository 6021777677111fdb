package screening

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"screening-backend/internal/llm"
	"screening-backend/internal/shared/telemetry"
)

const maxRetryDelay = 30 * time.Second

// retryingClient wraps an llm.Client with bounded retries. Only transient
// transport failures are retried; schema problems surface immediately to
// the caller.
type retryingClient struct {
	inner       llm.Client
	maxAttempts int
	baseDelay   time.Duration
	callTimeout time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func newRetryingClient(inner llm.Client, maxAttempts int, baseDelay, callTimeout time.Duration) *retryingClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &retryingClient{
		inner:       inner,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		callTimeout: callTimeout,
		sleep:       sleepCtx,
	}
}

func (r *retryingClient) ScoreResume(ctx context.Context, input llm.ScoreInput) (json.RawMessage, error) {
	var lastErr error
	delay := r.baseDelay
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		raw, err := r.score(ctx, input)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == r.maxAttempts {
			break
		}
		wait := delay
		var se *llm.StatusError
		if errors.As(err, &se) && se.RetryAfter > 0 {
			wait = se.RetryAfter
		}
		if wait > maxRetryDelay {
			wait = maxRetryDelay
		}
		telemetry.Warn("llm.retry", map[string]any{
			"attempt": attempt,
			"delayMs": wait.Milliseconds(),
			"error":   err.Error(),
		})
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
		delay *= 2
	}
	return nil, lastErr
}

func (r *retryingClient) score(ctx context.Context, input llm.ScoreInput) (json.RawMessage, error) {
	if r.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.callTimeout)
		defer cancel()
	}
	return r.inner.ScoreResume(ctx, input)
}

// isTransient reports whether a scoring failure is worth another attempt.
func isTransient(err error) bool {
	var se *llm.StatusError
	if errors.As(err, &se) {
		return se.Transient()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "connection reset", "no such host", "eof"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
