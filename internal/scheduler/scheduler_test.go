package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

type staticRepo struct {
	ideas      []*domain.Idea
	categories []*domain.Category
	err        error
}

func (r *staticRepo) SaveIdea(context.Context, *domain.Idea) error         { return nil }
func (r *staticRepo) DeleteIdea(context.Context, string) error             { return nil }
func (r *staticRepo) SaveCategory(context.Context, *domain.Category) error { return nil }
func (r *staticRepo) DeleteCategory(context.Context, string) error         { return nil }
func (r *staticRepo) Ping(context.Context) error                           { return nil }
func (r *staticRepo) LoadAll(context.Context) ([]*domain.Idea, []*domain.Category, error) {
	return r.ideas, r.categories, r.err
}

func TestStoreSyncerSync(t *testing.T) {
	idx := index.NewMemoryIndex()
	repo := &staticRepo{
		ideas:      []*domain.Idea{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}},
		categories: []*domain.Category{{ID: "c", Name: "C"}},
	}

	err := NewStoreSyncer(repo, idx, logger.Nop()).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, idx.IdeaCount())
	assert.Equal(t, 1, idx.CategoryCount())
}

func TestStoreSyncerKeepsIndexOnError(t *testing.T) {
	idx := index.NewMemoryIndex()
	idx.PutIdea(&domain.Idea{ID: "existing", Title: "kept"})

	repo := &staticRepo{err: errors.New("connection reset")}
	err := NewStoreSyncer(repo, idx, logger.Nop()).Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, idx.IdeaCount())
}

func writeSeed(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newMemoryService() *journal.Service {
	return journal.NewService(index.NewMemoryIndex(), nil, logger.Nop())
}

const baseSeed = `
categories:
  - name: Projects
    color: "#22c55e"
  - name: Reading
ideas:
  - title: Build a journaling app
    category: projects
    tags: [go]
  - title: Read more papers
`

func TestSeedReloaderFirstLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, baseSeed)

	svc := newMemoryService()
	sr := NewSeedReloader(path, svc, logger.Nop(), 0, nil)
	require.NoError(t, sr.Reload(ctx))

	cats := svc.ListCategories(ctx)
	require.Len(t, cats, 2)
	assert.Equal(t, "Projects", cats[0].Name)
	assert.Equal(t, domain.DefaultCategoryColor, cats[1].Color)

	ideas := svc.ListIdeas(ctx, domain.IdeaFilter{})
	require.Len(t, ideas, 2)

	var journaling *domain.Idea
	for _, i := range ideas {
		if i.Title == "Build a journaling app" {
			journaling = i
		}
	}
	require.NotNil(t, journaling)
	require.NotNil(t, journaling.CategoryID)
	assert.Equal(t, cats[0].ID, *journaling.CategoryID)
}

func TestSeedReloaderIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, baseSeed)

	svc := newMemoryService()
	sr := NewSeedReloader(path, svc, logger.Nop(), 0, nil)
	require.NoError(t, sr.Reload(ctx))
	require.NoError(t, sr.Reload(ctx))

	stats := svc.Stats(ctx)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 2, stats.TotalIdeas)
}

func TestSeedReloaderSkipsStartersWhenJournalHasIdeas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, baseSeed)

	svc := newMemoryService()
	_, err := svc.CreateIdea(ctx, journal.IdeaInput{Title: "mine"})
	require.NoError(t, err)

	require.NoError(t, NewSeedReloader(path, svc, logger.Nop(), 0, nil).Reload(ctx))

	stats := svc.Stats(ctx)
	assert.Equal(t, 1, stats.TotalIdeas)
	assert.Equal(t, 2, stats.TotalCategories)
}

func TestSeedReloaderInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, "categories: [")

	sr := NewSeedReloader(path, newMemoryService(), logger.Nop(), 0, nil)
	assert.Error(t, sr.Start(context.Background()))
}

func TestSeedReloaderManualTrigger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, "categories:\n  - name: Work\n")

	svc := newMemoryService()
	trigger := make(chan struct{}, 1)
	sr := NewSeedReloader(path, svc, logger.Nop(), 0, trigger)
	require.NoError(t, sr.Start(ctx))
	defer sr.Stop()

	require.Len(t, svc.ListCategories(ctx), 1)

	writeSeed(t, path, "categories:\n  - name: Work\n  - name: Health\n")
	trigger <- struct{}{}

	assert.Eventually(t, func() bool {
		return len(svc.ListCategories(ctx)) == 2
	}, time.Second, 10*time.Millisecond)

	sr.Stop()
	sr.Stop()
}
