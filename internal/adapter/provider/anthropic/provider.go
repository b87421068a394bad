// Package anthropic implements provider.Completer on the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

// Config holds the settings of the Anthropic client.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// Provider calls the Anthropic Messages API.
type Provider struct {
	client anthropic.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a Provider. A missing API key is reported on the first call.
func New(cfg Config, logger *slog.Logger) *Provider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
		cfg:    cfg,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Model returns the configured default model.
func (p *Provider) Model() string { return p.cfg.Model }

// Complete sends one Messages request. Frequency and presence penalties
// have no Anthropic equivalent and are ignored.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error) {
	if p.cfg.APIKey == "" {
		return nil, &domain.CompletionError{
			Kind:    domain.CompletionErrConfiguration,
			Message: "anthropic api key is not set",
		}
	}

	params := p.buildParams(req)

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		mapped := mapError(err)
		p.log.WarnContext(ctx, "anthropic request failed",
			slog.String("model", string(params.Model)),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", mapped.Error()),
		)
		return nil, mapped
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("model", string(params.Model)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Duration("duration", time.Since(start)),
	)

	var raw strings.Builder
	var toolArgs string
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			raw.WriteString(block.Text)
		case "tool_use":
			if toolArgs == "" {
				toolArgs = string(block.Input)
			}
		}
	}

	return provider.Normalize(raw.String(), toolArgs, req.ResponseSchema != nil)
}

func (p *Provider) buildParams(req provider.CompletionRequest) anthropic.MessageNewParams {
	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(p.cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserMessage)),
		},
	}

	if req.SystemMessage != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemMessage}}
	}

	if prm := req.Params; prm != nil {
		if prm.Temperature != nil {
			params.Temperature = anthropic.Float(clamp(*prm.Temperature, 0, 1))
		}
		if prm.TopP != nil {
			params.TopP = anthropic.Float(*prm.TopP)
		}
	}

	if s := req.ResponseSchema; s != nil {
		params.Tools = []anthropic.ToolUnionParam{{
			OfTool: &anthropic.ToolParam{
				Name:        s.Name,
				Description: anthropic.String(provider.ToolDescription),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: s.Schema["properties"],
					Required:   requiredFields(s.Schema["required"]),
				},
			},
		}}
		params.ToolChoice = anthropic.ToolChoiceUnionParam{OfAuto: &anthropic.ToolChoiceAutoParam{}}
	}

	return params
}

// requiredFields accepts both []string and the []any produced by decoded JSON.
func requiredFields(v any) []string {
	switch r := v.(type) {
	case []string:
		return r
	case []any:
		out := make([]string, 0, len(r))
		for _, item := range r {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Anthropic accepts temperature in [0, 1] while the public contract allows up to 2.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// mapError converts SDK errors into *domain.CompletionError.
func mapError(err error) *domain.CompletionError {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
		var body errorBody
		_ = json.Unmarshal([]byte(apiErr.RawJSON()), &body)
		return domain.NewCompletionAPIError(apiErr.StatusCode, body.Error.Message)
	}

	return &domain.CompletionError{
		Kind:    domain.CompletionErrNetwork,
		Message: "anthropic request failed",
		Err:     err,
	}
}
