package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
	"github.com/MrSnakeDoc/ideas/internal/metrics"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	Journal       *journal.Service   // mutations, queries and stats
	MemoryIndex   *index.MemoryIndex // read-only use: counts and last sync for /infra
	StoreBackend  string             // "memory" | "redis" | "mongo"
	SeedFile      string             // empty when no seed catalog is configured
	ReloadTrigger chan struct{}      // manual seed reload, nil when seeding is disabled
	Metrics       *metrics.Collector // nil disables /metrics and request metrics
	MCP           http.Handler       // streamable MCP transport, nil disables /mcp
	AllowedHosts  []string           // Host headers allowed on ops endpoints
	AllowedCIDRS  []string           // IPs allowed on ops endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy
	RateBurst     int                // token bucket size for mutating routes
	RatePerMin    int                // bucket refill per client IP per minute

	// WriteLimit guards mutating API routes. Built once by the server so every
	// route shares the same buckets.
	WriteLimit func(http.Handler) http.Handler
}
