package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"screening-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// ScoreResume sends the scoring prompt and returns the raw JSON judgment.
func (c *Client) ScoreResume(ctx context.Context, input llm.ScoreInput) (json.RawMessage, error) {
	temp := float32(0.5)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(llm.BuildScoringPrompt(input)), config)
	if err != nil {
		return nil, classifyError(err)
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: nil response")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini: empty response content")
	}
	return json.RawMessage(text), nil
}

// classifyError maps rate-limit and server-side failures to llm.StatusError
// so the retry layer can recognize them and honor the provider's delay hint.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &llm.StatusError{
				Code:       apiErr.Code,
				Message:    apiErr.Message,
				RetryAfter: quotaRetryDelay(apiErr),
			}
		case apiErr.Code >= 500:
			return &llm.StatusError{Code: apiErr.Code, Message: apiErr.Message}
		default:
			return fmt.Errorf("gemini generate: %w", err)
		}
	}
	// Transport-level failures arrive as plain errors without a status.
	msg := err.Error()
	if strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return &llm.StatusError{Code: http.StatusTooManyRequests, Message: "rate limited"}
	}
	if strings.Contains(msg, "UNAVAILABLE") || strings.Contains(msg, "INTERNAL") {
		return &llm.StatusError{Code: http.StatusServiceUnavailable, Message: "provider unavailable"}
	}
	return fmt.Errorf("gemini generate: %w", err)
}

var retryInRe = regexp.MustCompile(`(?i)retry in ([0-9.]+)\s*s`)

// quotaRetryDelay extracts the delay hint from a quota error: the RetryInfo
// detail when present, otherwise the "retry in Ns" phrasing in the message.
func quotaRetryDelay(apiErr genai.APIError) time.Duration {
	for _, detail := range apiErr.Details {
		typ, _ := detail["@type"].(string)
		if !strings.Contains(typ, "RetryInfo") {
			continue
		}
		if raw, _ := detail["retryDelay"].(string); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil && d > 0 {
				return d
			}
		}
	}
	if m := retryInRe.FindStringSubmatch(apiErr.Message); len(m) == 2 {
		if secs, err := strconv.ParseFloat(m[1], 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return 0
}

var _ llm.Client = (*Client)(nil)
