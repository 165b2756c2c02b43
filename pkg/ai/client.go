package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
)

// Client talks to an OpenAI-compatible chat completions endpoint (Groq by
// default).
type Client struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	// MaxAttempts bounds transport-level retries; 1 disables retrying.
	MaxAttempts int
	HTTP        *http.Client
}

func NewClient(baseURL, apiKey, model string, temperature float64, timeout time.Duration, maxAttempts int) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		MaxAttempts: maxAttempts,
		HTTP:        &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const chatOp = "chat completion"

func (c *Client) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}

	logger.Debug().Str("model", c.Model).Int("messages", len(messages)).Int("max_tokens", maxTokens).Msg("ai.client: POST chat/completions")

	resp, err := c.doPostWithRetry(ctx, "/chat/completions", body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &domain.UpstreamError{Op: chatOp, Err: err}
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.UpstreamError{Op: chatOp, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Int("status", resp.StatusCode).Str("body", truncate(string(rb), 512)).Msg("ai.client: non-success response")
		return "", &domain.UpstreamError{Op: chatOp, Status: resp.StatusCode}
	}

	var out chatResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", &domain.UpstreamError{Op: chatOp, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// doPostWithRetry retries transport errors with exponential backoff. HTTP
// error statuses are returned to the caller untouched.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	var lastErr error
	for i := 0; i < c.MaxAttempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.APIKey)
		}

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < c.MaxAttempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
