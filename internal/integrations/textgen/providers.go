package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SimpleProvider posts {prompt, model} and reads {response} or {result}
type SimpleProvider struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewSimpleProvider creates a provider for plain prompt-in/text-out endpoints
func NewSimpleProvider(cfg Config) *SimpleProvider {
	return &SimpleProvider{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *SimpleProvider) Name() string { return "simple" }

func (p *SimpleProvider) Generate(ctx context.Context, prompt string) (string, error) {
	headers := map[string]string{}
	if p.apiKey != "" {
		headers["Authorization"] = "Bearer " + p.apiKey
	}
	body := map[string]string{"prompt": prompt}
	if p.model != "" {
		body["model"] = p.model
	}

	raw, err := postJSON(ctx, p.client, p.url, headers, body)
	if err != nil {
		return "", err
	}

	var out struct {
		Response string `json:"response"`
		Result   string `json:"result"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw), nil
	}
	switch {
	case out.Response != "":
		return out.Response, nil
	case out.Result != "":
		return out.Result, nil
	}
	return string(raw), nil
}

// OpenAIProvider calls a chat-completions endpoint
type OpenAIProvider struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewOpenAIProvider creates an OpenAI-compatible provider
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	url := cfg.URL
	if url == "" {
		url = "https://api.openai.com/v1/chat/completions"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{url: url, apiKey: cfg.APIKey, model: model, client: &http.Client{Timeout: cfg.Timeout}}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrAPIKey
	}
	body := map[string]interface{}{
		"model":       p.model,
		"temperature": 0.3,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	raw, err := postJSON(ctx, p.client, p.url, map[string]string{"Authorization": "Bearer " + p.apiKey}, body)
	if err != nil {
		return "", err
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out.Choices) == 0 {
		return string(raw), nil
	}
	return out.Choices[0].Message.Content, nil
}

// GeminiProvider calls a generateContent endpoint
type GeminiProvider struct {
	url    string
	apiKey string
	client *http.Client
}

// NewGeminiProvider creates a Gemini provider
func NewGeminiProvider(cfg Config) *GeminiProvider {
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	url := cfg.URL
	if url == "" {
		url = fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model)
	}
	return &GeminiProvider{url: url, apiKey: cfg.APIKey, client: &http.Client{Timeout: cfg.Timeout}}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrAPIKey
	}
	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	raw, err := postJSON(ctx, p.client, p.url, map[string]string{"x-goog-api-key": p.apiKey}, body)
	if err != nil {
		return "", err
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return string(raw), nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
