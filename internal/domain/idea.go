package domain

import (
	"strings"
	"time"
)

// Idea is a user-authored note in the journal.
//
// Content is an opaque formatted-text blob produced by an external editor.
// It is stored verbatim and never parsed here.
type Idea struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is generated at creation (UUIDv4).
	ID string `json:"id" bson:"id"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// ─────────────────────────────
	// Editable fields (full replace on update)
	// ─────────────────────────────

	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`

	// CategoryID may point at a category that no longer exists.
	// Readers must treat that case as "no category".
	CategoryID *string `json:"category_id" bson:"category_id,omitempty"`

	// Tags is an ordered set: no duplicates, insertion order kept.
	Tags []string `json:"tags" bson:"tags"`

	// ─────────────────────────────
	// State
	// ─────────────────────────────

	IsArchived bool      `json:"is_archived" bson:"is_archived"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy so stored records never leak mutable state.
func (i *Idea) Clone() *Idea {
	if i == nil {
		return nil
	}
	c := *i
	if i.CategoryID != nil {
		id := *i.CategoryID
		c.CategoryID = &id
	}
	c.Tags = make([]string, len(i.Tags))
	copy(c.Tags, i.Tags)
	return &c
}

// HasCategory reports whether the idea references the given category id.
func (i *Idea) HasCategory(categoryID string) bool {
	return i.CategoryID != nil && *i.CategoryID == categoryID
}

// NormalizeTags trims tags, drops empty entries and collapses duplicates,
// keeping the first occurrence of each tag.
// The result is never nil so it encodes as [] in JSON.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// NormalizeCategoryID maps blank ids to nil.
func NormalizeCategoryID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
