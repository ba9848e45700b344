package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideas/internal/httpserver/handlers"
)

func init() {
	Register(registerIdeas)
	Register(registerCategories)
	Register(registerStats)
}

func registerIdeas(r chi.Router, d deps.Deps) {
	r.Get("/api/ideas", handlers.ListIdeas(d))
	r.Get("/api/ideas/{id}", handlers.GetIdea(d))

	w := r.With(writeLimit(d)...)
	w.Post("/api/ideas", handlers.CreateIdea(d))
	w.Put("/api/ideas/{id}", handlers.UpdateIdea(d))
	w.Patch("/api/ideas/{id}/archive", handlers.ArchiveIdea(d))
	w.Delete("/api/ideas/{id}", handlers.DeleteIdea(d))
}

func registerCategories(r chi.Router, d deps.Deps) {
	r.Get("/api/categories", handlers.ListCategories(d))
	r.Get("/api/categories/{id}", handlers.GetCategory(d))

	w := r.With(writeLimit(d)...)
	w.Post("/api/categories", handlers.CreateCategory(d))
	w.Delete("/api/categories/{id}", handlers.DeleteCategory(d))
}

func registerStats(r chi.Router, d deps.Deps) {
	r.Get("/api/stats", handlers.Stats(d))
}

func writeLimit(d deps.Deps) []Middleware {
	if d.WriteLimit == nil {
		return nil
	}
	return []Middleware{d.WriteLimit}
}
