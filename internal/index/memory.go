package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

// MemoryIndex is the authoritative in-memory store for ideas and categories.
// It enforces identity only (one record per id); business rules live in the
// journal service. Records are copied on the way in and on the way out.
type MemoryIndex struct {
	mu         sync.RWMutex
	ideas      map[string]*domain.Idea     // ID -> Idea
	categories map[string]*domain.Category // ID -> Category
	lastSync   time.Time                   // Timestamp of last bulk load
}

// NewMemoryIndex creates an empty index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		ideas:      make(map[string]*domain.Idea),
		categories: make(map[string]*domain.Category),
	}
}

// ReplaceAll swaps both collections in one step
func (idx *MemoryIndex) ReplaceAll(ideas []*domain.Idea, categories []*domain.Category) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ideas = make(map[string]*domain.Idea, len(ideas))
	for _, idea := range ideas {
		idx.ideas[idea.ID] = idea.Clone()
	}
	idx.categories = make(map[string]*domain.Category, len(categories))
	for _, cat := range categories {
		idx.categories[cat.ID] = cat.Clone()
	}
	idx.lastSync = time.Now()
}

// ─────────────────────────────────────────────────────────────────
// Ideas
// ─────────────────────────────────────────────────────────────────

// GetIdea retrieves an idea by ID
func (idx *MemoryIndex) GetIdea(id string) (*domain.Idea, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idea, ok := idx.ideas[id]
	return idea.Clone(), ok
}

// AllIdeas returns every idea in no particular order
func (idx *MemoryIndex) AllIdeas() []*domain.Idea {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.ideasLocked()
}

// PutIdea adds or replaces a single idea
func (idx *MemoryIndex) PutIdea(idea *domain.Idea) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ideas[idea.ID] = idea.Clone()
}

// DeleteIdea removes an idea and reports whether it existed
func (idx *MemoryIndex) DeleteIdea(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, ok := idx.ideas[id]
	delete(idx.ideas, id)
	return ok
}

// IdeaCount returns the number of ideas in the index
func (idx *MemoryIndex) IdeaCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.ideas)
}

// ─────────────────────────────────────────────────────────────────
// Categories
// ─────────────────────────────────────────────────────────────────

// GetCategory retrieves a category by ID
func (idx *MemoryIndex) GetCategory(id string) (*domain.Category, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	cat, ok := idx.categories[id]
	return cat.Clone(), ok
}

// AllCategories returns every category in no particular order
func (idx *MemoryIndex) AllCategories() []*domain.Category {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.categoriesLocked()
}

// PutCategory adds or replaces a single category
func (idx *MemoryIndex) PutCategory(cat *domain.Category) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.categories[cat.ID] = cat.Clone()
}

// DeleteCategory removes a category and reports whether it existed.
// Ideas pointing at it are left as they are.
func (idx *MemoryIndex) DeleteCategory(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, ok := idx.categories[id]
	delete(idx.categories, id)
	return ok
}

// CategoryCount returns the number of categories in the index
func (idx *MemoryIndex) CategoryCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.categories)
}

// ─────────────────────────────────────────────────────────────────
// Snapshots
// ─────────────────────────────────────────────────────────────────

// Snapshot returns both collections as seen under a single read lock,
// so derived figures never mix a before- and an after-state.
func (idx *MemoryIndex) Snapshot() ([]*domain.Idea, []*domain.Category) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.ideasLocked(), idx.categoriesLocked()
}

// GetLastSync returns the timestamp of the last ReplaceAll
func (idx *MemoryIndex) GetLastSync() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastSync
}

func (idx *MemoryIndex) ideasLocked() []*domain.Idea {
	ideas := make([]*domain.Idea, 0, len(idx.ideas))
	for _, idea := range idx.ideas {
		ideas = append(ideas, idea.Clone())
	}
	return ideas
}

func (idx *MemoryIndex) categoriesLocked() []*domain.Category {
	categories := make([]*domain.Category, 0, len(idx.categories))
	for _, cat := range idx.categories {
		categories = append(categories, cat.Clone())
	}
	return categories
}
