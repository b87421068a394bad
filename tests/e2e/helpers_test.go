//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/memory"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	generationrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/flashcards-backend/internal/testhelper"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/mock"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/rabbitmq"
	authpkg "github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
	authsvc "github.com/heartmarshall/flashcards-backend/internal/service/auth"
	"github.com/heartmarshall/flashcards-backend/internal/service/chat"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/internal/service/review"
	"github.com/heartmarshall/flashcards-backend/internal/service/source"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// stubFetcher serves article text without touching the network.
type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, pageURL *url.URL) (*provider.Article, error) {
	return &provider.Article{Title: "Stub " + pageURL.Host, Text: strings.Repeat("Sentence. ", 150)}, nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container, in-memory state stores and the mock completer.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := token.New(pool)
	cards := flashcardrepo.New(pool)
	generations := generationrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
		ResetTokenTTL:    time.Hour,
		ResetURL:         "http://localhost:3000/reset-password",
	}

	events := rabbitmq.NewLogPublisher(logger)
	completer := mock.New()

	authService := authsvc.NewService(logger, authsvc.Deps{
		Users:     users,
		Tokens:    tokens,
		Resets:    memory.NewResetTokenStore(),
		Tx:        txm,
		JWT:       authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL),
		Passwords: authpkg.NewPasswordHasher(authCfg.PasswordHashCost),
		Events:    events,
	}, authCfg)
	flashcardService := flashcard.NewService(logger, cards, generations, txm)
	generationService := generation.NewService(logger, completer, generations, events)
	reviewService := review.NewService(logger, memory.NewReviewStore(), flashcardService, generations, txm,
		config.ReviewConfig{SessionTTL: time.Hour, LockTTL: 10 * time.Second})

	handler := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler("test-version", map[string]rest.Pinger{"database": pool}),
		Auth:       rest.NewAuthHandler(authService, logger),
		Generation: rest.NewGenerationHandler(generationService, reviewService, logger),
		Flashcard:  rest.NewFlashcardHandler(flashcardService, logger),
		Review:     rest.NewReviewHandler(reviewService, logger),
		Chat:       rest.NewChatHandler(chat.NewService(logger, completer), logger),
		Source:     rest.NewSourceHandler(source.NewService(logger, stubFetcher{}), logger),
	}, rest.RouterOptions{
		Middleware: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Auth(authService),
			middleware.Logger(logger),
			middleware.BodyLimit(1 << 20),
		},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request and returns the status and the raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// doJSON sends a request, requires wantStatus and decodes the body into out.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	status, data := ts.do(t, method, path, token, body)
	require.Equal(t, wantStatus, status, "body: %s", data)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
	}
}

var emailSeq atomic.Int64

// uniqueEmail returns an address no other test in the run uses.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), emailSeq.Add(1))
}

type authBody struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// registerUser creates a fresh account and returns its tokens.
func (ts *testServer) registerUser(t *testing.T) authBody {
	t.Helper()

	var out authBody
	ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    uniqueEmail("user"),
		"password": "securepassword123",
	}, http.StatusCreated, &out)
	require.NotEmpty(t, out.AccessToken)
	return out
}

// sourceText returns valid generation input of n characters.
func sourceText(n int) string {
	return strings.Repeat("a", n)
}

type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

type flashcardBody struct {
	ID           int64  `json:"id"`
	Front        string `json:"front"`
	Back         string `json:"back"`
	Source       string `json:"source"`
	GenerationID *int64 `json:"generation_id"`
}

type proposalBody struct {
	ID     string `json:"id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
	Status string `json:"status"`
	Edited bool   `json:"edited"`
}

type generationBody struct {
	GenerationID       int64          `json:"generation_id"`
	ReviewID           string         `json:"review_id"`
	FlashcardProposals []proposalBody `json:"flashcard_proposals"`
	GeneratedCount     int            `json:"generated_count"`
}

type reviewBody struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	EditingID     string         `json:"editing_id"`
	AcceptedCount int            `json:"accepted_count"`
	Proposals     []proposalBody `json:"proposals"`
}
