package redis

import (
	"context"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

// SaveIdea upserts an idea and registers it in the ideas set
func (s *Store) SaveIdea(ctx context.Context, idea *domain.Idea) error {
	return s.save(ctx, IdeaKey(idea.ID), KeyAllIdeas, idea.ID, idea)
}

// DeleteIdea removes an idea record and its set membership
func (s *Store) DeleteIdea(ctx context.Context, id string) error {
	return s.remove(ctx, IdeaKey(id), KeyAllIdeas, id)
}
