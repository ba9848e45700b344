// Package redis persists ideas and categories as JSON records plus one ID
// set per kind. Every write updates the record and its set membership in a
// single MULTI/EXEC transaction.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

// Store implements journal.Repository on Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// LoadAll reads every idea and category. IDs listed in a set whose record is
// missing are skipped.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Idea, []*domain.Category, error) {
	ideas, err := loadRecords[domain.Idea](ctx, s.client, KeyAllIdeas, IdeaKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ideas: %w", err)
	}
	for _, idea := range ideas {
		if idea.Tags == nil {
			idea.Tags = []string{}
		}
	}

	categories, err := loadRecords[domain.Category](ctx, s.client, KeyAllCategories, CategoryKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return ideas, categories, nil
}

func loadRecords[T any](ctx context.Context, client *redis.Client, setKey string, keyFn func(string) string) ([]*T, error) {
	ids, err := client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get IDs from %s: %w", setKey, err)
	}

	out := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// set member without a record
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", keys[i], err)
		}
		out = append(out, &rec)
	}

	return out, nil
}

func (s *Store) save(ctx context.Context, key, setKey, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, setKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *Store) remove(ctx context.Context, key, setKey, id string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, setKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
