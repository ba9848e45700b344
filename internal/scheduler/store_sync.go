package scheduler

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

// StoreSyncer hydrates the memory index from the repository on startup.
type StoreSyncer struct {
	repo   journal.Repository
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewStoreSyncer creates a new store syncer
func NewStoreSyncer(
	repo journal.Repository,
	idx *index.MemoryIndex,
	log logger.Logger,
) *StoreSyncer {
	return &StoreSyncer{
		repo:   repo,
		index:  idx,
		logger: log,
	}
}

// Sync replaces the index content with everything the repository holds.
// On failure the index is left untouched.
func (ss *StoreSyncer) Sync(ctx context.Context) error {
	ss.logger.Info("syncing journal from store to memory")

	ideas, categories, err := ss.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	ss.index.ReplaceAll(ideas, categories)

	ss.logger.Info("synced journal from store",
		logger.Int("ideas", len(ideas)),
		logger.Int("categories", len(categories)))

	return nil
}
