package journal

import (
	"context"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

// Repository is the durable side of the journal. Implementations live under
// internal/store. A nil Repository runs the journal purely in memory.
//
// Save* must be upserts keyed by ID. Delete* of an unknown id is not an error.
type Repository interface {
	SaveIdea(ctx context.Context, idea *domain.Idea) error
	DeleteIdea(ctx context.Context, id string) error
	SaveCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]*domain.Idea, []*domain.Category, error)
	Ping(ctx context.Context) error
}

// MutationObserver is notified after every mutation attempt.
// err is nil on success.
type MutationObserver interface {
	ObserveMutation(operation string, err error)
}

// Operation names reported to the MutationObserver.
const (
	OpCreateIdea     = "create_idea"
	OpUpdateIdea     = "update_idea"
	OpArchiveIdea    = "archive_idea"
	OpDeleteIdea     = "delete_idea"
	OpCreateCategory = "create_category"
	OpDeleteCategory = "delete_category"
)
