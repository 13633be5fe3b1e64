// Package ollama implements the HTTP client for the Ollama API used to
// transform sentences into Shakespearean English.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// MaxSentenceLength is the longest input accepted by Transform.
const MaxSentenceLength = 1000

var (
	ErrEmptyInput    = errors.New("sentence cannot be empty or contain only whitespace")
	ErrInputTooLong  = fmt.Errorf("sentence is too long (maximum %d characters)", MaxSentenceLength)
	ErrConnection    = errors.New("cannot connect to the Ollama API")
	ErrTimeout       = errors.New("request to the Ollama API timed out")
	ErrInvalidJSON   = errors.New("invalid JSON response from the Ollama API")
	ErrEmptyResponse = errors.New("empty response from the Ollama API")
)

// APIError is returned when the Ollama API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

const promptTemplate = `Transform the following modern English sentence into Shakespearean English.
Use archaic vocabulary, thou/thee/thy pronouns, and elizabethan sentence structure.
Only return the transformed sentence, nothing else.

Modern sentence: "%s"

Shakespearean version:`

// Client talks to a single Ollama host with a fixed model and timeout.
type Client struct {
	Host    string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the transport; nil falls back to a client
	// whose timeout matches Timeout.
	HTTPClient *http.Client
}

// New creates a Client for the given host and model. A trailing slash on
// the host is stripped so endpoint paths can be appended directly.
func New(host, model string, timeout time.Duration) *Client {
	return &Client{
		Host:    strings.TrimRight(host, "/"),
		Model:   model,
		Timeout: timeout,
	}
}

// Transform sends sentence to the generate endpoint and returns the
// Shakespearean rewrite. Input is validated before any network traffic.
func (c *Client) Transform(ctx context.Context, sentence string) (string, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return "", ErrEmptyInput
	}
	if len(sentence) > MaxSentenceLength {
		return "", ErrInputTooLong
	}

	reqBody := GenerateRequest{
		Model:  c.Model,
		Prompt: fmt.Sprintf(promptTemplate, sentence),
		Stream: false,
		Options: &Options{
			Temperature: 0.7,
			TopP:        0.9,
		},
	}

	body, err := c.postJSON(ctx, "/api/generate", reqBody)
	if err != nil {
		return "", err
	}

	var result GenerateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	text := strings.TrimSpace(result.Response)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return cleanResponse(text), nil
}

// ListModels returns the models installed on the Ollama host.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Host+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result TagsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return result.Models, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Host+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do executes the request with the configured timeout and classifies
// failures into the package error taxonomy.
func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.Timeout > 0 {
		ctx, cancel := context.WithTimeout(req.Context(), c.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("model %q not found, ensure the model is installed in Ollama: %w", c.Model, apiErr)
		}
		return nil, apiErr
	}

	return body, nil
}

func (c *Client) classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
	}

	return fmt.Errorf("%w at %s, ensure Ollama is running: %v", ErrConnection, c.Host, err)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.Timeout}
}

// cleanResponse strips prompt scaffolding the model sometimes echoes back
// and returns the first usable line, falling back to the full text.
func cleanResponse(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Transform") ||
			strings.HasPrefix(line, "Modern") ||
			strings.HasPrefix(line, "Shakespearean") {
			continue
		}
		return line
	}
	return text
}
