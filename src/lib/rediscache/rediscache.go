package rediscache

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var mux sync.Mutex

// Cache is the shared client.
var Cache *redis.Client

// MaxAttempts is the number of connection retries before giving up.
var MaxAttempts = 5

// Backoff returns the time to wait before the given attempt.
var Backoff = func(attempt int) time.Duration {
	return time.Duration(attempt*attempt) * time.Second
}

func newClient(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,

		// Explicitly disable maintenance notifications
		// This prevents the client from sending CLIENT MAINT_NOTIFICATIONS ON
		// See https://github.com/redis/go-redis/issues/3536#issuecomment-3449792377
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// Client returns the shared redis client, retrying MaxAttempts times with
// Backoff. It returns nil when REDIS_ADDR is not configured or the
// connection could not be established.
func Client() *redis.Client {
	return connect(MaxAttempts)
}

// TryClient is Client with a single attempt and no waiting.
func TryClient() *redis.Client {
	return connect(0)
}

func connect(retries int) *redis.Client {
	mux.Lock()
	defer mux.Unlock()

	if Cache != nil {
		return Cache
	}

	addr := config.Get().RedisAddr

	if addr == "" {
		return nil
	}

	var err error

	if Cache, err = newClient(addr); err != nil {
		for attempt := 1; attempt <= retries; attempt++ {
			backoffDuration := Backoff(attempt)
			slog.Errorf("redis connection attempt %d failed, retrying in %v", attempt, backoffDuration)
			time.Sleep(backoffDuration)

			if Cache, _ = newClient(addr); Cache != nil {
				break
			}
		}

		if Cache == nil {
			slog.Errorf("failed to establish redis connection after %d attempts: %v", retries+1, err)
			return nil
		}
	}

	slog.Info("created new redis client successfully")
	return Cache
}

// SetClient replaces the shared client. Passing nil resets it.
func SetClient(c *redis.Client) {
	mux.Lock()
	defer mux.Unlock()
	Cache = c
}

// IsConnectionError reports whether err is caused by the connection
// rather than by the command.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, redis.ErrClosed) || errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error

	if errors.As(err, &netErr) {
		return true
	}

	// Check common network error strings
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "i/o timeout")
}
