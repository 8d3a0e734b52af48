// Package openai implements the article Summarizer over the OpenAI
// chat completions API. Without an API key it degrades to truncation.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	xhttp "StockSight/pkg/http"
	"StockSight/pkg/logger"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 150
	defaultTemperature = 0.5

	systemPrompt = "You are a financial news analyst. Summarize the article in two or three sentences focused on what matters to an investor."

	// fallbackChars is the truncation length used when no API key is set.
	fallbackChars = 200
)

// Option configures Summarizer.
type Option func(*Summarizer)

// Summarizer condenses article text via chat completions.
type Summarizer struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	http        *xhttp.Client
	log         *logger.Logger
}

// New creates a Summarizer. An empty apiKey disables the API and makes
// Summarize fall back to truncation.
func New(apiKey string, log *logger.Logger, opts ...Option) *Summarizer {
	s := &Summarizer{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		model:       defaultModel,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		log:         log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.http == nil {
		s.http = xhttp.NewClient(xhttp.WithTimeout(30 * time.Second))
	}
	return s
}

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(s *Summarizer) {
		s.baseURL = url
	}
}

// WithModel sets the completion model.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithLimits sets max tokens and temperature.
func WithLimits(maxTokens int, temperature float64) Option {
	return func(s *Summarizer) {
		s.maxTokens = maxTokens
		s.temperature = temperature
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *xhttp.Client) Option {
	return func(s *Summarizer) {
		s.http = hc
	}
}

// Enabled reports whether the API is configured.
func (s *Summarizer) Enabled() bool {
	return s.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Summarize returns a short summary of text. API failures fall back to
// truncation rather than failing the whole report.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if !s.Enabled() {
		return truncate(text, fallbackChars), nil
	}

	req := &chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	var resp chatResponse
	err := s.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    s.baseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + s.apiKey,
		},
		Body: req,
	}, &resp)
	if err != nil {
		s.log.Warn("summarize request failed, falling back to truncation", logger.Error(err))
		return truncate(text, fallbackChars), nil
	}
	if resp.Error != nil {
		s.log.Warn("summarize api error, falling back to truncation",
			logger.String("type", resp.Error.Type),
			logger.String("message", resp.Error.Message))
		return truncate(text, fallbackChars), nil
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarize: empty choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// truncate cuts text to at most n bytes without splitting a UTF-8 rune.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n] + "..."
}
