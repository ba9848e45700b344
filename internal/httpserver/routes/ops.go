package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideas/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/ideas/internal/httpserver/mw"
)

func init() {
	Register(registerHealthz)
	Register(registerReadyz)
	Register(registerInfra)
	Register(registerReload)
	Register(registerMetrics)
}

func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}

func registerReadyz(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
}

func registerInfra(r chi.Router, d deps.Deps) {
	r.With(mw.OpsGuard(d.AllowedCIDRS, d.AllowedHosts, d.TrustProxy, d.Logger)...).Get("/infra", handlers.Infra(d))
}

func registerReload(r chi.Router, d deps.Deps) {
	r.With(mw.OpsGuard(d.AllowedCIDRS, d.AllowedHosts, d.TrustProxy, d.Logger)...).Post("/reload", handlers.Reload(d))
}

func registerMetrics(r chi.Router, d deps.Deps) {
	if d.Metrics == nil {
		return
	}
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Method("GET", "/metrics", d.Metrics.Handler())
}
