package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	Backend         string `json:"backend,omitempty"`
	Source          string `json:"source,omitempty"`
	IdeasLoaded     *int   `json:"ideas_loaded,omitempty"`
	CategoriesCount *int   `json:"categories_loaded,omitempty"`
	LastSync        string `json:"last_sync,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the store, the index, the seed catalog and the
// optional transports.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ideas := d.MemoryIndex.IdeaCount()
		categories := d.MemoryIndex.CategoryCount()
		lastSync := d.MemoryIndex.GetLastSync()
		lastSyncStr := "never"
		if !lastSync.IsZero() {
			lastSyncStr = lastSync.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"index": {
				OK:              true,
				IdeasLoaded:     &ideas,
				CategoriesCount: &categories,
				LastSync:        lastSyncStr,
			},
			"store": checkStore(r.Context(), d),
			"seed":  seedStatus(d),
			"mcp":   {OK: d.MCP != nil, Mode: enabled(d.MCP != nil)},
			"metrics": {
				OK:   d.Metrics != nil,
				Mode: enabled(d.Metrics != nil),
			},
		}

		response := infraResponse{
			Status:     determineStatus(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineStatus(components map[string]componentStatus) string {
	if store, exists := components["store"]; exists && !store.OK {
		return "degraded" // reads still served from memory, writes fail
	}
	return "ok"
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Journal.Ping(ctx); err != nil {
		return componentStatus{
			OK:      false,
			Backend: d.StoreBackend,
			Impact:  "writes-failing",
			Error:   "unreachable",
		}
	}

	mode := "persistent"
	if d.StoreBackend == "memory" {
		mode = "volatile"
	}
	return componentStatus{
		OK:      true,
		Backend: d.StoreBackend,
		Mode:    mode,
	}
}

func seedStatus(d deps.Deps) componentStatus {
	if d.SeedFile == "" {
		return componentStatus{OK: true, Mode: "disabled"}
	}
	return componentStatus{OK: true, Mode: "enabled", Source: d.SeedFile}
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
