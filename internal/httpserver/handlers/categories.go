package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideas/internal/journal"
)

// ListCategories serves GET /api/categories
func ListCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Journal.ListCategories(r.Context()))
	}
}

// GetCategory serves GET /api/categories/{id}
func GetCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := d.Journal.GetCategory(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, cat)
	}
}

// CreateCategory serves POST /api/categories
func CreateCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in journal.CategoryInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, r, d, err)
			return
		}

		cat, err := d.Journal.CreateCategory(r.Context(), in)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, cat)
	}
}

// DeleteCategory serves DELETE /api/categories/{id}
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Journal.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Category deleted"})
	}
}
