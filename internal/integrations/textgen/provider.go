// Package textgen talks to external text-generation endpoints and turns their free-text answers
// into structured client insights.
package textgen

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
)

// Errors surfaced to operators. Parse problems never produce an error.
var (
	ErrAPIKey       = errors.New("text generation API key rejected or missing, check TEXTGEN_API_KEY")
	ErrUnreachable  = errors.New("text generation endpoint unreachable, check network access and TEXTGEN_URL")
	ErrBadStatus    = errors.New("text generation endpoint returned an error status")
	ErrUnknownModel = errors.New("unknown text generation provider")
)

// Provider generates text for a prompt
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config configures a provider
type Config struct {
	// Provider is one of simple, openai, gemini, anthropic.
	Provider string
	URL      string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// NewProvider builds the provider strategy named in cfg
func NewProvider(cfg Config) (Provider, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	switch strings.ToLower(cfg.Provider) {
	case "", "simple":
		if cfg.URL == "" {
			return nil, fmt.Errorf("TEXTGEN_URL is required for the simple provider")
		}
		return NewSimpleProvider(cfg), nil
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "gemini":
		return NewGeminiProvider(cfg), nil
	case "anthropic":
		return NewAnthropicProvider(cfg), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModel, cfg.Provider)
}

// postJSON sends body as JSON and returns the raw response body of a 2xx answer
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body interface{}) ([]byte, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (HTTP %d)", ErrAPIKey, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrBadStatus, resp.StatusCode, truncate(string(respBody), 200))
	}
	return respBody, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
