package redis

import (
	"context"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

// SaveCategory upserts a category and registers it in the categories set
func (s *Store) SaveCategory(ctx context.Context, cat *domain.Category) error {
	return s.save(ctx, CategoryKey(cat.ID), KeyAllCategories, cat.ID, cat)
}

// DeleteCategory removes a category record. Ideas pointing at it are left
// untouched.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.remove(ctx, CategoryKey(id), KeyAllCategories, id)
}
