package domain

import (
	"sort"
	"strings"
)

// IdeaFilter holds the per-call listing filters. All set fields are ANDed.
type IdeaFilter struct {
	Search     string // case-insensitive substring of the title
	CategoryID string // exact match, empty = any category
	Archived   *bool  // nil = archived and active ideas
}

// normalized lowercases the search term once per query.
func (f IdeaFilter) normalized() IdeaFilter {
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return f
}

// match reports whether the idea satisfies every filter. f must be normalized.
func (f IdeaFilter) match(idea *Idea) bool {
	if f.Archived != nil && idea.IsArchived != *f.Archived {
		return false
	}
	if f.CategoryID != "" && !idea.HasCategory(f.CategoryID) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(idea.Title), f.Search) {
		return false
	}
	return true
}

// FilterIdeas returns the matching ideas, newest first.
// The result is never nil.
func FilterIdeas(ideas []*Idea, f IdeaFilter) []*Idea {
	nf := f.normalized()
	out := make([]*Idea, 0, len(ideas))
	for _, idea := range ideas {
		if nf.match(idea) {
			out = append(out, idea)
		}
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst orders ideas by CreatedAt descending.
// Ties are broken by ID so the order is stable across calls.
// Newest-first is a presentation choice, not a storage guarantee.
func SortNewestFirst(ideas []*Idea) {
	sort.SliceStable(ideas, func(a, b int) bool {
		ca, cb := ideas[a].CreatedAt, ideas[b].CreatedAt
		if !ca.Equal(cb) {
			return ca.After(cb)
		}
		return ideas[a].ID < ideas[b].ID
	})
}

// SortCategoriesByName orders categories by name, case-insensitively.
func SortCategoriesByName(categories []*Category) {
	sort.SliceStable(categories, func(a, b int) bool {
		na, nb := strings.ToLower(categories[a].Name), strings.ToLower(categories[b].Name)
		if na != nb {
			return na < nb
		}
		return categories[a].ID < categories[b].ID
	})
}
