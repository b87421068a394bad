package testhelper

import (
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

// SetupRedis returns the config of a Redis 7 container shared by the test
// binary. Skipped in -short mode.
func SetupRedis(t *testing.T) config.RedisConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	redisOnce.Do(func() {
		ctx, cancel := startupContext()
		defer cancel()
		redisAddr, redisErr = startContainer(ctx, testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		}, "6379")
	})
	if redisErr != nil {
		t.Fatalf("testhelper: setup redis: %v", redisErr)
	}

	return config.RedisConfig{Addr: redisAddr}
}
