package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by IDEAS_STORE.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout applied by the router

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Store string // "memory" | "redis" | "mongo"

	SeedFile           string        // optional YAML catalog of categories and starter ideas
	SeedReloadInterval time.Duration // 0 disables periodic seed reload

	// Redis (IDEAS_STORE=redis)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// Mongo (IDEAS_STORE=mongo)
	MongoURI            string        // ex: "mongodb://localhost:27017"
	MongoDB             string        // database name
	MongoConnectTimeout time.Duration // connect + ping timeout

	// HTTP surface
	CORSOrigins  []string // allowed browser origins, "*" by default
	AllowedHosts []string // optional, restrict ops endpoints to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
	RateBurst    int      // token bucket size for mutating routes
	RatePerMin   int      // refill per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("IDEAS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("IDEAS_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("IDEAS_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("IDEAS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("IDEAS_PRETTY_LOG", true),

		// Storage
		Store: strings.ToLower(getenv("IDEAS_STORE", StoreMemory)),

		// Seed catalog
		SeedFile:           getenv("IDEAS_SEED_FILE", ""),
		SeedReloadInterval: mustDuration("IDEAS_SEED_RELOAD_INTERVAL", 0),

		// Redis settings
		RedisUser:           getenv("IDEAS_REDIS_USERNAME", ""),
		RedisPassword:       getenv("IDEAS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("IDEAS_REDIS_DB", 0),
		RedisDT:             mustDuration("IDEAS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("IDEAS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("IDEAS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("IDEAS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("IDEAS_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("IDEAS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("IDEAS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("IDEAS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("IDEAS_REDIS_WARN_THRESHOLD", 3),

		// Mongo settings
		MongoDB:             getenv("IDEAS_MONGO_DB", "ideas"),
		MongoConnectTimeout: mustDuration("IDEAS_MONGO_CONNECT_TIMEOUT", 10*time.Second),

		// HTTP surface
		CORSOrigins:  splitAndTrim(getenv("IDEAS_CORS_ORIGINS", "*")),
		AllowedHosts: splitAndTrim(getenv("IDEAS_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("IDEAS_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("IDEAS_TRUST_PROXY", false),
		RateBurst:    getenvInt("IDEAS_RATE_BURST", 30),
		RatePerMin:   getenvInt("IDEAS_RATE_PER_MIN", 120),
	}

	// Backend-specific required settings
	switch cfg.Store {
	case StoreMemory:
	case StoreRedis:
		cfg.RedisAddr = requireEnv("IDEAS_REDIS_ADDR")
	case StoreMongo:
		cfg.MongoURI = requireEnv("IDEAS_MONGO_URI")
	default:
		panic(fmt.Sprintf("❌ FATAL: IDEAS_STORE must be one of memory, redis, mongo (got %q)", cfg.Store))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfgCopy.MongoURI != "" {
			cfgCopy.MongoURI = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
