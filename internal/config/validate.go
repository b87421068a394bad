package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 || c.Auth.ResetTokenTTL <= 0 {
		return fmt.Errorf("auth: token TTLs must be positive")
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Review.SessionTTL <= 0 {
		return fmt.Errorf("review.session_ttl must be positive (got %v)", c.Review.SessionTTL)
	}
	if c.Review.LockTTL <= 0 {
		return fmt.Errorf("review.lock_ttl must be positive (got %v)", c.Review.LockTTL)
	}

	if c.Generation.ErrorLogRetentionDays <= 0 {
		return fmt.Errorf("generation.error_log_retention_days must be > 0 (got %d)", c.Generation.ErrorLogRetentionDays)
	}

	if c.RateLimit.Enabled && (c.RateLimit.WindowSecs <= 0 || c.RateLimit.Auth <= 0 || c.RateLimit.Generation <= 0) {
		return fmt.Errorf("rate_limit: limits and window must be positive when enabled")
	}

	return nil
}

func (a *AIConfig) validate() error {
	switch a.Provider {
	case ProviderOpenRouter, ProviderAnthropic, ProviderMock:
	default:
		return fmt.Errorf("unknown provider %q", a.Provider)
	}
	if a.Model == "" {
		return fmt.Errorf("model is required")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %v)", a.Timeout)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive (got %d)", a.MaxTokens)
	}
	return nil
}
