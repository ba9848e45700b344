package seed

import (
	"strings"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/journal"
)

// MissingCategories returns the inputs for every declared category whose
// name (case-insensitive, trimmed) is not already taken. Duplicates inside
// the file collapse to the first entry.
func MissingCategories(f *File, existing []*domain.Category) []journal.CategoryInput {
	seen := make(map[string]struct{}, len(existing)+len(f.Categories))
	for _, c := range existing {
		seen[nameKey(c.Name)] = struct{}{}
	}

	out := make([]journal.CategoryInput, 0)
	for _, c := range f.Categories {
		key := nameKey(c.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, journal.CategoryInput{
			Name:  strings.TrimSpace(c.Name),
			Color: c.Color,
		})
	}
	return out
}

// IdeaInputs maps starter ideas, resolving category names against cats.
// An unknown category name leaves the idea uncategorized.
func IdeaInputs(f *File, cats []*domain.Category) []journal.IdeaInput {
	byName := make(map[string]string, len(cats))
	for _, c := range cats {
		if _, dup := byName[nameKey(c.Name)]; !dup {
			byName[nameKey(c.Name)] = c.ID
		}
	}

	out := make([]journal.IdeaInput, 0, len(f.Ideas))
	for _, e := range f.Ideas {
		in := journal.IdeaInput{
			Title:   e.Title,
			Content: e.Content,
			Tags:    e.Tags,
		}
		if id, ok := byName[nameKey(e.Category)]; ok && e.Category != "" {
			catID := id
			in.CategoryID = &catID
		}
		out = append(out, in)
	}
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
