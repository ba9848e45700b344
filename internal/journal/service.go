// Package journal applies mutations and answers queries over the idea
// collection. Writes are serialized by a single service lock and go to the
// repository before the in-memory index, so a failed call changes nothing.
package journal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

// IdeaInput is the complete editable state of an idea.
// Update replaces every field with the values given here.
type IdeaInput struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
}

// CategoryInput describes a new category. Color falls back to
// domain.DefaultCategoryColor when blank.
type CategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}

// Service is the journal's mutation, query and stats entry point.
type Service struct {
	mu       sync.Mutex // serializes writes
	index    *index.MemoryIndex
	repo     Repository
	validate *validator.Validate
	logger   logger.Logger
	observer MutationObserver
	now      func() time.Time
	newID    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithObserver reports every mutation outcome to o.
func WithObserver(o MutationObserver) Option {
	return func(s *Service) { s.observer = o }
}

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides UUID generation (tests).
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// NewService wires a journal over idx. repo may be nil for a memory-only journal.
func NewService(idx *index.MemoryIndex, repo Repository, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		index:    idx,
		repo:     repo,
		validate: newValidator(),
		logger:   log,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is UTC with millisecond precision so every backend round-trips it.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) observe(op string, err error) {
	if s.observer != nil {
		s.observer.ObserveMutation(op, err)
	}
}

// ─────────────────────────────────────────────────────────────────
// Idea mutations
// ─────────────────────────────────────────────────────────────────

// CreateIdea validates the input and stores a new active idea.
func (s *Service) CreateIdea(ctx context.Context, in IdeaInput) (idea *domain.Idea, err error) {
	defer func() { s.observe(OpCreateIdea, err) }()

	in = normalizeIdeaInput(in)
	if err := s.validateStruct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	idea = &domain.Idea{
		ID:         s.newID(),
		Title:      in.Title,
		Content:    in.Content,
		CategoryID: in.CategoryID,
		Tags:       in.Tags,
		IsArchived: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.commitIdea(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Info("idea created",
		logger.String("idea_id", idea.ID),
		logger.Int("tags", len(idea.Tags)))

	return idea.Clone(), nil
}

// UpdateIdea replaces title, content, category and tags of an existing idea.
// ID, CreatedAt and the archive flag are preserved.
func (s *Service) UpdateIdea(ctx context.Context, id string, in IdeaInput) (idea *domain.Idea, err error) {
	defer func() { s.observe(OpUpdateIdea, err) }()

	in = normalizeIdeaInput(in)
	if err := s.validateStruct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.index.GetIdea(id)
	if !ok {
		return nil, domain.IdeaNotFound(id)
	}

	current.Title = in.Title
	current.Content = in.Content
	current.CategoryID = in.CategoryID
	current.Tags = in.Tags
	current.UpdatedAt = s.timestamp()

	if err := s.commitIdea(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("idea updated", logger.String("idea_id", id))
	return current.Clone(), nil
}

// ArchiveIdea flips the archive flag. Calling it twice restores the
// original state.
func (s *Service) ArchiveIdea(ctx context.Context, id string) (idea *domain.Idea, err error) {
	defer func() { s.observe(OpArchiveIdea, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.index.GetIdea(id)
	if !ok {
		return nil, domain.IdeaNotFound(id)
	}

	current.IsArchived = !current.IsArchived
	current.UpdatedAt = s.timestamp()

	if err := s.commitIdea(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("idea archive toggled",
		logger.String("idea_id", id),
		logger.Bool("is_archived", current.IsArchived))

	return current.Clone(), nil
}

// DeleteIdea removes an idea permanently.
func (s *Service) DeleteIdea(ctx context.Context, id string) (err error) {
	defer func() { s.observe(OpDeleteIdea, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.GetIdea(id); !ok {
		return domain.IdeaNotFound(id)
	}

	if s.repo != nil {
		if err := s.repo.DeleteIdea(ctx, id); err != nil {
			return fmt.Errorf("delete idea %s: %w", id, err)
		}
	}
	s.index.DeleteIdea(id)

	s.logger.Info("idea deleted", logger.String("idea_id", id))
	return nil
}

func (s *Service) commitIdea(ctx context.Context, idea *domain.Idea) error {
	if s.repo != nil {
		if err := s.repo.SaveIdea(ctx, idea); err != nil {
			return fmt.Errorf("save idea %s: %w", idea.ID, err)
		}
	}
	s.index.PutIdea(idea)
	return nil
}

func normalizeIdeaInput(in IdeaInput) IdeaInput {
	in.Title = strings.TrimSpace(in.Title)
	in.CategoryID = domain.NormalizeCategoryID(in.CategoryID)
	in.Tags = domain.NormalizeTags(in.Tags)
	return in
}

// ─────────────────────────────────────────────────────────────────
// Category mutations
// ─────────────────────────────────────────────────────────────────

// CreateCategory validates and stores a new category.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (cat *domain.Category, err error) {
	defer func() { s.observe(OpCreateCategory, err) }()

	in.Name = strings.TrimSpace(in.Name)
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = domain.DefaultCategoryColor
	}
	if err := s.validateStruct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cat = &domain.Category{
		ID:        s.newID(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: s.timestamp(),
	}

	if s.repo != nil {
		if err := s.repo.SaveCategory(ctx, cat); err != nil {
			return nil, fmt.Errorf("save category %s: %w", cat.ID, err)
		}
	}
	s.index.PutCategory(cat)

	s.logger.Info("category created",
		logger.String("category_id", cat.ID),
		logger.String("name", cat.Name))

	return cat.Clone(), nil
}

// DeleteCategory removes a category. Ideas that reference it keep their
// category_id, which from then on resolves to no category.
func (s *Service) DeleteCategory(ctx context.Context, id string) (err error) {
	defer func() { s.observe(OpDeleteCategory, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.GetCategory(id); !ok {
		return domain.CategoryNotFound(id)
	}

	if s.repo != nil {
		if err := s.repo.DeleteCategory(ctx, id); err != nil {
			return fmt.Errorf("delete category %s: %w", id, err)
		}
	}
	s.index.DeleteCategory(id)

	s.logger.Info("category deleted", logger.String("category_id", id))
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────

// GetIdea returns one idea or a NotFoundError.
func (s *Service) GetIdea(_ context.Context, id string) (*domain.Idea, error) {
	idea, ok := s.index.GetIdea(id)
	if !ok {
		return nil, domain.IdeaNotFound(id)
	}
	return idea, nil
}

// GetCategory returns one category or a NotFoundError.
func (s *Service) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	cat, ok := s.index.GetCategory(id)
	if !ok {
		return nil, domain.CategoryNotFound(id)
	}
	return cat, nil
}

// IdeaCategory resolves the idea's category. It reports false when the idea
// has none or when the referenced category has been deleted.
func (s *Service) IdeaCategory(_ context.Context, idea *domain.Idea) (*domain.Category, bool) {
	if idea == nil || idea.CategoryID == nil {
		return nil, false
	}
	return s.index.GetCategory(*idea.CategoryID)
}

// ListIdeas filters the collection, newest first. It never fails; an empty
// result is an empty, non-nil slice.
func (s *Service) ListIdeas(_ context.Context, f domain.IdeaFilter) []*domain.Idea {
	return domain.FilterIdeas(s.index.AllIdeas(), f)
}

// ListCategories returns every category sorted by name.
func (s *Service) ListCategories(_ context.Context) []*domain.Category {
	categories := s.index.AllCategories()
	domain.SortCategoriesByName(categories)
	return categories
}

// Stats computes the summary counts from one consistent snapshot.
func (s *Service) Stats(_ context.Context) domain.Stats {
	ideas, categories := s.index.Snapshot()
	return domain.ComputeStats(ideas, len(categories))
}

// Ping checks the repository. A memory-only journal is always healthy.
func (s *Service) Ping(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Ping(ctx)
}
