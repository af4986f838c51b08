package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request is the wire format for a chat-completions call.
type request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// response is the subset of the chat-completions reply we consume.
type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// apiError is the error envelope returned by the API on failure.
// Different providers populate different fields, so we probe several.
type apiError struct {
	Error struct {
		Message     string `json:"message"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Code        any    `json:"code"`
	} `json:"error"`
}

// Client calls a chat-completions style LLM API.
type Client struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a new LLM client from configuration.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.ApiKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a system+user message pair and returns the first choice's
// message content, trimmed. Any HTTP, network, or decoding failure is
// returned as an error; callers decide the recovery granularity.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp.StatusCode, raw)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("invalid JSON response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("invalid API response: no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// decodeAPIError extracts a readable message from an error response body.
// Falls back to the raw body when the envelope cannot be decoded.
func decodeAPIError(status int, raw []byte) error {
	var envelope apiError
	if err := json.Unmarshal(raw, &envelope); err == nil {
		msg := envelope.Error.Message
		if msg == "" {
			msg = envelope.Error.Description
		}
		if msg != "" {
			errType := envelope.Error.Type
			if errType == "" {
				errType = "API Error"
			}
			code := fmt.Sprintf("%v", envelope.Error.Code)
			if code == "<nil>" || code == "" {
				code = fmt.Sprintf("%d", status)
			}
			return fmt.Errorf("API error (%s, code %s): %s", errType, code, msg)
		}
	}
	return fmt.Errorf("API error (HTTP %d): %s", status, strings.TrimSpace(string(raw)))
}
