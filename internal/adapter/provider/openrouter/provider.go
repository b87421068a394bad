// Package openrouter implements provider.Completer against the OpenRouter
// chat completions API using the OpenAI-compatible client.
package openrouter

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

// DefaultBaseURL is the OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Config holds the settings of the OpenRouter client.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	SiteURL   string
	AppName   string
	Timeout   time.Duration
	MaxTokens int
}

// Provider calls OpenRouter.
type Provider struct {
	client *openai.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a Provider. A missing API key is reported on the first call.
func New(cfg Config, logger *slog.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			referer: cfg.SiteURL,
			title:   cfg.AppName,
		},
	}

	return &Provider{
		client: openai.NewClientWithConfig(oc),
		cfg:    cfg,
		log:    logger.With("adapter", "openrouter"),
	}
}

// Model returns the configured default model.
func (p *Provider) Model() string { return p.cfg.Model }

// Complete sends one chat completion request.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error) {
	if p.cfg.APIKey == "" {
		return nil, &domain.CompletionError{
			Kind:    domain.CompletionErrConfiguration,
			Message: "openrouter api key is not set",
		}
	}

	body := p.buildRequest(req)

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, body)
	if err != nil {
		mapped := mapError(err)
		p.log.WarnContext(ctx, "openrouter request failed",
			slog.String("model", body.Model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", mapped.Error()),
		)
		return nil, mapped
	}

	p.log.DebugContext(ctx, "openrouter response",
		slog.String("model", body.Model),
		slog.Int("choices", len(resp.Choices)),
		slog.Duration("duration", time.Since(start)),
	)

	var raw, toolArgs string
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		raw = msg.Content
		if len(msg.ToolCalls) > 0 {
			toolArgs = msg.ToolCalls[0].Function.Arguments
		}
	}

	return provider.Normalize(raw, toolArgs, req.ResponseSchema != nil)
}

func (p *Provider) buildRequest(req provider.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemMessage,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserMessage,
	})

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	out := openai.ChatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: p.cfg.MaxTokens,
	}

	if prm := req.Params; prm != nil {
		if prm.Temperature != nil {
			out.Temperature = samplingValue(*prm.Temperature)
		}
		if prm.TopP != nil {
			out.TopP = samplingValue(*prm.TopP)
		}
		if prm.FrequencyPenalty != nil {
			out.FrequencyPenalty = samplingValue(*prm.FrequencyPenalty)
		}
		if prm.PresencePenalty != nil {
			out.PresencePenalty = samplingValue(*prm.PresencePenalty)
		}
	}

	if s := req.ResponseSchema; s != nil {
		out.Tools = []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        s.Name,
				Description: provider.ToolDescription,
				Parameters:  s.Schema,
			},
		}}
		out.ToolChoice = "auto"
	}

	return out
}

// mapError converts client errors into *domain.CompletionError.
func mapError(err error) *domain.CompletionError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return domain.NewCompletionAPIError(apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return domain.NewCompletionAPIError(reqErr.HTTPStatusCode, "")
	}

	return &domain.CompletionError{
		Kind:    domain.CompletionErrNetwork,
		Message: "openrouter request failed",
		Err:     err,
	}
}

// headerTransport adds the OpenRouter attribution headers.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(r)
}

// samplingValue converts a sampling parameter for go-openai, whose request
// fields are omitempty. An explicit zero is sent as the smallest positive
// float32 so that it reaches the API instead of the server default.
func samplingValue(v float64) float32 {
	if v == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(v)
}
