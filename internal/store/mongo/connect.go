package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MrSnakeDoc/ideas/internal/backoff"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

// Connect opens a client and waits for the primary to answer within timeout.
// The caller owns the returned client and must Disconnect it.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	policy := backoff.Policy{
		Initial:       500 * time.Millisecond,
		Max:           2 * time.Second,
		PingTimeout:   timeout,
		Total:         timeout,
		WarnThreshold: 3,
	}
	ping := func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
	if _, err := backoff.Wait(ctx, "mongo "+dbName, ping, policy, log); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(dbName), nil
}
