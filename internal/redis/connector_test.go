package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/ideas/internal/backoff"
	"github.com/MrSnakeDoc/ideas/internal/config"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

func testRetry() backoff.Policy {
	return backoff.Policy{
		Initial:     time.Millisecond,
		Max:         5 * time.Millisecond,
		PingTimeout: 100 * time.Millisecond,
		Total:       200 * time.Millisecond,
	}
}

func TestNewConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), ConnectOptions{Addr: mr.Addr(), Retry: testRetry()}, logger.Nop())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), ConnectOptions{
		Addr:        addr,
		DialTimeout: 10 * time.Millisecond,
		Retry:       testRetry(),
	}, logger.Nop())
	assert.Error(t, err)
}

func TestNewRejectsInvalidPolicy(t *testing.T) {
	_, err := New(context.Background(), ConnectOptions{Addr: "localhost:0"}, logger.Nop())
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		RedisAddr:           "redis:6379",
		RedisDB:             2,
		RedisPoolSize:       7,
		RedisRetryInterval:  time.Second,
		RedisMaxWait:        4 * time.Second,
		RedisPingTimeout:    time.Second,
		RedisConnectTimeout: 30 * time.Second,
		RedisWarnThreshold:  3,
	}

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, 30*time.Second, opts.Retry.Total)
	assert.Equal(t, 4*time.Second, opts.Retry.Max)
	assert.NoError(t, opts.Retry.Validate())
}
