package domain

import (
	"errors"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "order preserved", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "duplicates collapsed", in: []string{"b", "a", "b", "a"}, want: []string{"b", "a"}},
		{name: "blanks dropped and trimmed", in: []string{" x ", "", "  ", "x"}, want: []string{"x"}},
		{name: "case sensitive", in: []string{"Go", "go"}, want: []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if got == nil {
				t.Fatal("NormalizeTags() returned nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeTags()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeCategoryID(t *testing.T) {
	if NormalizeCategoryID(nil) != nil {
		t.Error("nil should stay nil")
	}
	if NormalizeCategoryID(strPtr("   ")) != nil {
		t.Error("blank id should become nil")
	}
	if got := NormalizeCategoryID(strPtr(" c1 ")); got == nil || *got != "c1" {
		t.Errorf("NormalizeCategoryID() = %v, want c1", got)
	}
}

func TestIdeaCloneIsDeep(t *testing.T) {
	orig := &Idea{ID: "1", CategoryID: strPtr("c"), Tags: []string{"a"}}
	cp := orig.Clone()
	cp.Tags[0] = "changed"
	*cp.CategoryID = "other"

	if orig.Tags[0] != "a" {
		t.Error("Clone() shares the tags slice")
	}
	if *orig.CategoryID != "c" {
		t.Error("Clone() shares the category pointer")
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(IdeaNotFound("x"), ErrNotFound) {
		t.Error("IdeaNotFound should match ErrNotFound")
	}
	if !errors.Is(CategoryNotFound("x"), ErrNotFound) {
		t.Error("CategoryNotFound should match ErrNotFound")
	}
	var verr error = &ValidationError{Field: "title", Reason: "is required"}
	if !errors.Is(verr, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
	if errors.Is(verr, ErrNotFound) {
		t.Error("ValidationError must not match ErrNotFound")
	}
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(testIdeas(), 2)
	if s.TotalIdeas != 4 || s.ArchivedIdeas != 1 || s.ActiveIdeas != 3 || s.TotalCategories != 2 {
		t.Errorf("ComputeStats() = %+v", s)
	}
	if s.ActiveIdeas+s.ArchivedIdeas != s.TotalIdeas {
		t.Error("active + archived must equal total")
	}
}
