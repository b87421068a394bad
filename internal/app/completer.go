package app

import (
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/mock"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

// NewCompleter registers every known completion backend and returns the one
// selected by cfg.Provider.
func NewCompleter(cfg config.AIConfig, logger *slog.Logger) (provider.Completer, error) {
	registry := provider.NewRegistry()

	registry.Register(config.ProviderOpenRouter, openrouter.New(openrouter.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		SiteURL:   cfg.SiteURL,
		AppName:   cfg.AppName,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}, logger))

	registry.Register(config.ProviderAnthropic, anthropic.New(anthropic.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}, logger))

	registry.Register(config.ProviderMock, mock.New())

	return registry.Get(cfg.Provider)
}
