package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
)

// Stats serves GET /api/stats
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Journal.Stats(r.Context()))
	}
}
