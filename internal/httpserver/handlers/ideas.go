package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideas/internal/journal"
)

// ListIdeas serves GET /api/ideas?search=&category_id=&archived=
func ListIdeas(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseIdeaFilter(r)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, d.Journal.ListIdeas(r.Context(), filter))
	}
}

func parseIdeaFilter(r *http.Request) (domain.IdeaFilter, error) {
	q := r.URL.Query()
	filter := domain.IdeaFilter{
		Search:     q.Get("search"),
		CategoryID: strings.TrimSpace(q.Get("category_id")),
	}

	if raw := strings.TrimSpace(q.Get("archived")); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, &badRequestError{field: "archived", msg: "archived must be true or false"}
		}
		filter.Archived = &archived
	}
	return filter, nil
}

// GetIdea serves GET /api/ideas/{id}
func GetIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idea, err := d.Journal.GetIdea(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, idea)
	}
}

// CreateIdea serves POST /api/ideas
func CreateIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in journal.IdeaInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, r, d, err)
			return
		}

		idea, err := d.Journal.CreateIdea(r.Context(), in)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, idea)
	}
}

// UpdateIdea serves PUT /api/ideas/{id}
func UpdateIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in journal.IdeaInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, r, d, err)
			return
		}

		idea, err := d.Journal.UpdateIdea(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, idea)
	}
}

// ArchiveIdea serves PATCH /api/ideas/{id}/archive
func ArchiveIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idea, err := d.Journal.ArchiveIdea(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, idea)
	}
}

// DeleteIdea serves DELETE /api/ideas/{id}
func DeleteIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Journal.DeleteIdea(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Idea deleted"})
	}
}
