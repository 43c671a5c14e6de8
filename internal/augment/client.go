package augment

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerOpenRouter = "openrouter"

// ClientConfig describes how to reach an OpenAI-compatible completion API.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// Referer and Title are OpenRouter attribution headers.
	Referer    string
	Title      string
	HTTPClient *http.Client
}

// OpenRouterClient implements Completer against the OpenRouter chat
// completions API.
type OpenRouterClient struct {
	client openai.Client
	model  string
}

// NewOpenRouterClient returns ErrNotConfigured when no API key is set.
func NewOpenRouterClient(cfg ClientConfig) (*OpenRouterClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.Title))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenRouterClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// Complete sends a system instruction plus one user message and returns the
// first choice's content.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt, systemInstruction string, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", upstreamError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

func upstreamError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		ue := &UpstreamError{
			Provider:   providerOpenRouter,
			StatusCode: apiErr.StatusCode,
			Message:    http.StatusText(apiErr.StatusCode),
			Err:        err,
		}
		if apiErr.Message != "" {
			ue.Message = apiErr.Message
		}
		if apiErr.Response != nil {
			ue.RetryAfter = parseRetryAfter(apiErr.Response.Header.Get("Retry-After"), time.Now())
		}
		return ue
	}
	return &UpstreamError{Provider: providerOpenRouter, Message: err.Error(), Err: err}
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
