// Package redis builds the go-redis client used by the Redis store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/ideas/internal/backoff"
	"github.com/MrSnakeDoc/ideas/internal/config"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

// ConnectOptions defines the client and its startup retry behavior.
type ConnectOptions struct {
	Addr         string        // ex: "localhost:6379"
	User         string        // optional username
	Password     string        // optional password
	DB           int           // Redis DB number
	DialTimeout  time.Duration // per-dial timeout
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	Retry        backoff.Policy
}

// OptionsFromConfig maps the IDEAS_REDIS_* settings.
func OptionsFromConfig(cfg *config.Config) ConnectOptions {
	return ConnectOptions{
		Addr:         cfg.RedisAddr,
		User:         cfg.RedisUser,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RedisDT,
		ReadTimeout:  cfg.RedisRT,
		WriteTimeout: cfg.RedisWT,
		PoolSize:     cfg.RedisPoolSize,
		Retry: backoff.Policy{
			Initial:       cfg.RedisRetryInterval,
			Max:           cfg.RedisMaxWait,
			PingTimeout:   cfg.RedisPingTimeout,
			Total:         cfg.RedisConnectTimeout,
			WarnThreshold: cfg.RedisWarnThreshold,
		},
	}
}

// New creates a client and blocks until Redis answers PING or the retry
// budget runs out. The client is closed on failure.
func New(ctx context.Context, opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if err := opts.Retry.Validate(); err != nil {
		return nil, fmt.Errorf("redis retry policy: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	ping := func(ctx context.Context) error { return client.Ping(ctx).Err() }
	if _, err := backoff.Wait(ctx, "redis "+opts.Addr, ping, opts.Retry, log); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
