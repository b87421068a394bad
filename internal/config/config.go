package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Auth       AuthConfig       `yaml:"auth"`
	AI         AIConfig         `yaml:"ai"`
	Review     ReviewConfig     `yaml:"review"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// RedisConfig holds Redis settings. An empty Addr selects in-memory stores.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// RabbitMQConfig holds broker settings. An empty URL disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"         env:"RABBITMQ_URL"`
	EventQueue string `yaml:"event_queue" env:"RABBITMQ_EVENT_QUEUE" env-default:"flashcards.events"`
	Prefetch   int    `yaml:"prefetch"    env:"RABBITMQ_PREFETCH"    env-default:"10"`
}

// Enabled reports whether a broker is configured.
func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"flashcards"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	ResetTokenTTL    time.Duration `yaml:"reset_token_ttl"    env:"AUTH_RESET_TOKEN_TTL"    env-default:"1h"`
	ResetURL         string        `yaml:"reset_url"          env:"AUTH_RESET_URL"          env-default:"http://localhost:3000/reset-password"`
}

// AI provider names.
const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderMock       = "mock"
)

// AIConfig holds completion provider settings.
type AIConfig struct {
	Provider  string        `yaml:"provider"   env:"AI_PROVIDER"   env-default:"openrouter"`
	Model     string        `yaml:"model"      env:"AI_MODEL"      env-default:"openai/gpt-4o-mini"`
	APIKey    string        `yaml:"api_key"    env:"AI_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"AI_BASE_URL"`
	SiteURL   string        `yaml:"site_url"   env:"AI_SITE_URL"   env-default:"http://localhost:3000"`
	AppName   string        `yaml:"app_name"   env:"AI_APP_NAME"   env-default:"Flashcards"`
	Timeout   time.Duration `yaml:"timeout"    env:"AI_TIMEOUT"    env-default:"60s"`
	MaxTokens int           `yaml:"max_tokens" env:"AI_MAX_TOKENS" env-default:"4096"`
}

// ReviewConfig holds review session settings.
type ReviewConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl" env:"REVIEW_SESSION_TTL" env-default:"2h"`
	LockTTL    time.Duration `yaml:"lock_ttl"    env:"REVIEW_LOCK_TTL"    env-default:"30s"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled    bool `yaml:"enabled"     env:"RATE_LIMIT_ENABLED"     env-default:"true"`
	Auth       int  `yaml:"auth"        env:"RATE_LIMIT_AUTH"        env-default:"10"`
	Generation int  `yaml:"generation"  env:"RATE_LIMIT_GENERATION"  env-default:"5"`
	WindowSecs int  `yaml:"window_secs" env:"RATE_LIMIT_WINDOW_SECS" env-default:"60"`
}

// Window returns the limiter window as a duration.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSecs) * time.Second
}

// GenerationConfig holds generation bookkeeping settings.
type GenerationConfig struct {
	ErrorLogRetentionDays int `yaml:"error_log_retention_days" env:"GENERATION_ERROR_LOG_RETENTION_DAYS" env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
