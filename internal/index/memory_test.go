package index

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

func TestNewMemoryIndex(t *testing.T) {
	index := NewMemoryIndex()
	if index == nil {
		t.Fatal("NewMemoryIndex() returned nil")
	}
	if len(index.AllIdeas()) != 0 || len(index.AllCategories()) != 0 {
		t.Error("NewMemoryIndex() should start empty")
	}
}

func TestReplaceAllOverwrites(t *testing.T) {
	index := NewMemoryIndex()
	index.PutIdea(&domain.Idea{ID: "old", Title: "old"})

	index.ReplaceAll(
		[]*domain.Idea{{ID: "i1", Title: "one"}, {ID: "i2", Title: "two"}},
		[]*domain.Category{{ID: "c1", Name: "work"}},
	)

	if got := index.IdeaCount(); got != 2 {
		t.Errorf("ReplaceAll() stored %v ideas, want 2", got)
	}
	if _, ok := index.GetIdea("old"); ok {
		t.Error("ReplaceAll() should drop previous ideas")
	}
	if got := index.CategoryCount(); got != 1 {
		t.Errorf("ReplaceAll() stored %v categories, want 1", got)
	}
	if index.GetLastSync().IsZero() {
		t.Error("ReplaceAll() should record the sync time")
	}
}

func TestPutAndDeleteIdea(t *testing.T) {
	index := NewMemoryIndex()
	index.PutIdea(&domain.Idea{ID: "i1", Title: "first"})
	index.PutIdea(&domain.Idea{ID: "i1", Title: "replaced"})

	idea, ok := index.GetIdea("i1")
	if !ok {
		t.Fatal("GetIdea() did not find i1")
	}
	if idea.Title != "replaced" {
		t.Errorf("PutIdea() title = %v, want replaced", idea.Title)
	}
	if index.IdeaCount() != 1 {
		t.Errorf("PutIdea() with same id should not duplicate, count = %v", index.IdeaCount())
	}

	if !index.DeleteIdea("i1") {
		t.Error("DeleteIdea() should report an existing idea")
	}
	if index.DeleteIdea("i1") {
		t.Error("DeleteIdea() should report a missing idea")
	}
}

func TestDeleteCategoryKeepsIdeas(t *testing.T) {
	index := NewMemoryIndex()
	catID := "c1"
	index.PutCategory(&domain.Category{ID: catID, Name: "work"})
	index.PutIdea(&domain.Idea{ID: "i1", Title: "x", CategoryID: &catID})

	index.DeleteCategory(catID)

	idea, ok := index.GetIdea("i1")
	if !ok {
		t.Fatal("idea should survive category deletion")
	}
	if _, ok := index.GetCategory(*idea.CategoryID); ok {
		t.Error("deleted category should not resolve")
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	index := NewMemoryIndex()
	index.PutIdea(&domain.Idea{ID: "i1", Title: "original", Tags: []string{"a"}})

	got, _ := index.GetIdea("i1")
	got.Title = "mutated"
	got.Tags[0] = "mutated"

	again, _ := index.GetIdea("i1")
	if again.Title != "original" || again.Tags[0] != "a" {
		t.Errorf("GetIdea() leaked internal state: %+v", again)
	}

	all := index.AllIdeas()
	all[0].IsArchived = true
	again, _ = index.GetIdea("i1")
	if again.IsArchived {
		t.Error("AllIdeas() leaked internal state")
	}
}

func TestConcurrentAccess(t *testing.T) {
	index := NewMemoryIndex()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			index.PutIdea(&domain.Idea{ID: fmt.Sprintf("i%d", n), CreatedAt: time.Now()})
		}(i)
	}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ideas, _ := index.Snapshot()
			_ = len(ideas)
		}()
	}

	wg.Wait()

	if got := index.IdeaCount(); got != 100 {
		t.Errorf("concurrent PutIdea() count = %v, want 100", got)
	}
}
