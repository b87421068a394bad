// Package article fetches web pages and extracts their readable text.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

// MaxBodyBytes limits how much HTML is read from a page.
const MaxBodyBytes = 10 * 1024 * 1024

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Provider downloads pages and runs readability extraction on them.
type Provider struct {
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider with a 30s request timeout.
func NewProvider(logger *slog.Logger) *Provider {
	return &Provider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "article"),
	}
}

// Fetch downloads pageURL and returns its article content.
func (p *Provider) Fetch(ctx context.Context, pageURL *url.URL) (*provider.Article, error) {
	p.log.DebugContext(ctx, "article request", slog.String("url", pageURL.String()))

	resp, err := p.doWithRetry(ctx, pageURL)
	if err != nil {
		p.log.WarnContext(ctx, "article request failed", slog.String("url", pageURL.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("article: request failed: %v: %w", err, domain.ErrRemoteService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article: unexpected status %d: %w", resp.StatusCode, domain.ErrRemoteService)
	}

	if resp.ContentLength > MaxBodyBytes {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	// One extra byte distinguishes "exactly at the limit" from "over it".
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %v: %w", err, domain.ErrRemoteService)
	}
	if len(body) > MaxBodyBytes {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, domain.NewValidationError("url", "page has no readable content")
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return nil, domain.NewValidationError("url", "page has no readable content")
	}

	p.log.DebugContext(ctx, "article extracted",
		slog.String("url", pageURL.String()),
		slog.Int("bytes", len(body)),
		slog.Int("text_length", domain.RuneLen(text)),
	)

	return &provider.Article{
		Title:    strings.TrimSpace(parsed.Title),
		SiteName: parsed.SiteName,
		Text:     text,
	}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, pageURL *url.URL) (*http.Response, error) {
	resp, err := p.do(ctx, pageURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "article retry", slog.String("url", pageURL.String()), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.do(ctx, pageURL)
}

func (p *Provider) do(ctx context.Context, pageURL *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	return p.httpClient.Do(req)
}
