// Package groq talks to Groq's OpenAI-compatible chat completions endpoint.
package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrorKind distinguishes the ways a completion call can fail so the UI can
// show a specific, actionable message for each.
type ErrorKind string

const (
	KindAuth        ErrorKind = "auth"
	KindRateLimited ErrorKind = "rate_limited"
	KindConnection  ErrorKind = "connection"
	KindBadReply    ErrorKind = "bad_reply"
)

// RequestError wraps an upstream failure with its classified kind.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("groq: %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("groq: %s: %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Options configures a Client. Zero values fall back to the Groq defaults
// used by the original deployment.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"
	defaultTimeout = 60 * time.Second
)

// Client performs exactly one blocking chat completion per call. It never
// retries; a failed call surfaces as a RequestError and the user decides
// whether to resubmit.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = defaultBaseURL
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
	}
}

// Complete sends one system+user message pair and returns the raw reply text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &RequestError{Kind: KindBadReply, Err: errors.New("empty completion")}
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping performs a minimal completion to validate credentials and
// reachability before the UI is started.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "ping"},
		},
		MaxTokens: 1,
	})
	if err != nil {
		return classify(err)
	}
	if len(resp.Choices) == 0 {
		return &RequestError{Kind: KindBadReply, Err: errors.New("empty completion")}
	}
	return nil
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden:
			return &RequestError{Kind: KindAuth, StatusCode: apiErr.HTTPStatusCode, Err: err}
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &RequestError{Kind: KindRateLimited, StatusCode: apiErr.HTTPStatusCode, Err: err}
		default:
			return &RequestError{Kind: KindConnection, StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		kind := KindConnection
		switch reqErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindAuth
		case http.StatusTooManyRequests:
			kind = KindRateLimited
		}
		return &RequestError{Kind: kind, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &RequestError{Kind: KindConnection, Err: err}
}
