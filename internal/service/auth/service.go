package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// resetTokenStore keeps hashes of password-reset tokens until they are used or expire.
type resetTokenStore interface {
	Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error
	// Consume returns the owner of the token and deletes it atomically.
	// Returns domain.ErrNotFound if the token is unknown or expired.
	Consume(ctx context.Context, tokenHash string) (uuid.UUID, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// eventPublisher publishes domain events.
type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Deps groups the collaborators of the auth service.
type Deps struct {
	Users     userRepo
	Tokens    tokenRepo
	Resets    resetTokenStore
	Tx        txManager
	JWT       jwtManager
	Passwords passwordHasher
	Events    eventPublisher
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tokens    tokenRepo
	resets    resetTokenStore
	tx        txManager
	jwt       jwtManager
	passwords passwordHasher
	events    eventPublisher
	cfg       config.AuthConfig
	now       func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, deps Deps, cfg config.AuthConfig) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     deps.Users,
		tokens:    deps.Tokens,
		resets:    deps.Resets,
		tx:        deps.Tx,
		jwt:       deps.JWT,
		passwords: deps.Passwords,
		events:    deps.Events,
		cfg:       cfg,
		now:       time.Now,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
