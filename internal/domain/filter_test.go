package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func testIdeas() []*Idea {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*Idea{
		{ID: "1", Title: "Project Alpha", CategoryID: strPtr("work"), CreatedAt: base},
		{ID: "2", Title: "project beta", CategoryID: strPtr("work"), IsArchived: true, CreatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Other", CategoryID: strPtr("home"), CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Loose thought", CreatedAt: base.Add(3 * time.Hour)},
	}
}

func titles(ideas []*Idea) []string {
	out := make([]string, len(ideas))
	for i, idea := range ideas {
		out[i] = idea.Title
	}
	return out
}

func TestFilterIdeas(t *testing.T) {
	tests := []struct {
		name   string
		filter IdeaFilter
		want   []string
	}{
		{
			name:   "no filter returns everything newest first",
			filter: IdeaFilter{},
			want:   []string{"Loose thought", "Other", "project beta", "Project Alpha"},
		},
		{
			name:   "search is case-insensitive",
			filter: IdeaFilter{Search: "Proj"},
			want:   []string{"project beta", "Project Alpha"},
		},
		{
			name:   "search is trimmed",
			filter: IdeaFilter{Search: "  OTHER "},
			want:   []string{"Other"},
		},
		{
			name:   "category and active",
			filter: IdeaFilter{CategoryID: "work", Archived: boolPtr(false)},
			want:   []string{"Project Alpha"},
		},
		{
			name:   "archived only",
			filter: IdeaFilter{Archived: boolPtr(true)},
			want:   []string{"project beta"},
		},
		{
			name:   "no match is empty, not nil",
			filter: IdeaFilter{Search: "zzz"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterIdeas(testIdeas(), tt.filter)
			if got == nil {
				t.Fatal("FilterIdeas() returned nil slice")
			}
			gotTitles := titles(got)
			if len(gotTitles) != len(tt.want) {
				t.Fatalf("FilterIdeas() = %v, want %v", gotTitles, tt.want)
			}
			for i := range tt.want {
				if gotTitles[i] != tt.want[i] {
					t.Errorf("FilterIdeas()[%d] = %q, want %q", i, gotTitles[i], tt.want[i])
				}
			}
		})
	}
}

func TestSortNewestFirstTieBreak(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ideas := []*Idea{
		{ID: "b", CreatedAt: at},
		{ID: "a", CreatedAt: at},
		{ID: "c", CreatedAt: at.Add(time.Second)},
	}
	SortNewestFirst(ideas)

	want := []string{"c", "a", "b"}
	for i, id := range want {
		if ideas[i].ID != id {
			t.Errorf("SortNewestFirst()[%d] = %s, want %s", i, ideas[i].ID, id)
		}
	}
}

func TestFilterIgnoresContent(t *testing.T) {
	idea := &Idea{ID: "1", Title: "Groceries", Content: "<p>Project notes</p>"}
	if got := FilterIdeas([]*Idea{idea}, IdeaFilter{Search: "project"}); len(got) != 0 {
		t.Errorf("FilterIdeas() = %d ideas, want 0: search must only look at the title", len(got))
	}
}

func TestSortCategoriesByName(t *testing.T) {
	cats := []*Category{{ID: "1", Name: "work"}, {ID: "2", Name: "Art"}, {ID: "3", Name: "home"}}
	SortCategoriesByName(cats)
	want := []string{"Art", "home", "work"}
	for i, name := range want {
		if cats[i].Name != name {
			t.Errorf("SortCategoriesByName()[%d] = %s, want %s", i, cats[i].Name, name)
		}
	}
}
