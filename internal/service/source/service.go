// Package source turns a web page into source text for generation.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

type articleFetcher interface {
	Fetch(ctx context.Context, pageURL *url.URL) (*provider.Article, error)
}

// Result is the extracted text of one page.
type Result struct {
	Title      string
	SourceText string
	Truncated  bool
}

// Service extracts article text from URLs.
type Service struct {
	log     *slog.Logger
	fetcher articleFetcher
}

// NewService creates a new source service.
func NewService(logger *slog.Logger, fetcher articleFetcher) *Service {
	return &Service{
		log:     logger.With("service", "source"),
		fetcher: fetcher,
	}
}

// Extract downloads rawURL and returns its readable text, cut to the
// maximum length accepted by generation.
func (s *Service) Extract(ctx context.Context, rawURL string) (*Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}

	article, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("source.Extract: %w", err)
	}

	text := normalizeText(article.Text)
	if text == "" {
		return nil, domain.NewValidationError("url", "no readable text found on the page")
	}

	truncated := domain.RuneLen(text) > domain.MaxSourceTextLength
	if truncated {
		text = strings.TrimSpace(domain.Truncate(text, domain.MaxSourceTextLength))
	}

	s.log.InfoContext(ctx, "source extracted",
		slog.String("host", u.Host),
		slog.Int("length", domain.RuneLen(text)),
		slog.Bool("truncated", truncated),
	)

	return &Result{
		Title:      strings.TrimSpace(article.Title),
		SourceText: text,
		Truncated:  truncated,
	}, nil
}

func parseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.NewValidationError("url", "required")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, domain.NewValidationError("url", "must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, domain.NewValidationError("url", "scheme must be http or https")
	}
	return u, nil
}

// normalizeText collapses runs of blank lines and trims every line.
func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
