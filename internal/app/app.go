package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/config"
	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/httpserver"
	"github.com/MrSnakeDoc/ideas/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
	"github.com/MrSnakeDoc/ideas/internal/mcp"
	"github.com/MrSnakeDoc/ideas/internal/metrics"
	"github.com/MrSnakeDoc/ideas/internal/redis"
	"github.com/MrSnakeDoc/ideas/internal/scheduler"
	mongostore "github.com/MrSnakeDoc/ideas/internal/store/mongo"
	redisstore "github.com/MrSnakeDoc/ideas/internal/store/redis"
	"github.com/MrSnakeDoc/ideas/internal/version"
)

type App struct {
	cfg        *config.Config
	logger     logger.Logger
	server     *httpserver.Server
	reloader   *scheduler.SeedReloader
	closeStore func(context.Context) error
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	memIndex := index.NewMemoryIndex()

	// Connect the store early - fail fast if unavailable
	repo, closeStore, err := openStore(context.Background(), cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	if repo != nil {
		syncer := scheduler.NewStoreSyncer(repo, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			_ = closeStore(context.Background())
			return nil, fmt.Errorf("failed to hydrate journal from %s: %w", cfg.Store, err)
		}
	}

	collector := metrics.NewCollector()
	service := journal.NewService(memIndex, repo, loggerClient.With(logger.String("component", "journal")),
		journal.WithObserver(collector))
	collector.RegisterStats(func() domain.Stats { return service.Stats(context.Background()) })

	// Seed catalog (optional)
	var reloader *scheduler.SeedReloader
	var reloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing seed reloader",
			logger.String("file", cfg.SeedFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewSeedReloader(
			cfg.SeedFile,
			service,
			loggerClient.With(logger.String("component", "seed")),
			cfg.SeedReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, seeding disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Journal:       service,
		MemoryIndex:   memIndex,
		StoreBackend:  cfg.Store,
		SeedFile:      cfg.SeedFile,
		ReloadTrigger: reloadTrigger,
		Metrics:       collector,
		MCP:           mcp.Handler(service, version.Version),
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		RateBurst:     cfg.RateBurst,
		RatePerMin:    cfg.RatePerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:        cfg,
		logger:     loggerClient,
		server:     server,
		reloader:   reloader,
		closeStore: closeStore,
	}, nil
}

// openStore connects the configured backend. It returns a nil repository
// for the memory store.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (journal.Repository, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.New(ctx, redis.OptionsFromConfig(cfg), log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("redis store initialized", logger.String("addr", cfg.RedisAddr))
		return redisstore.NewStore(client), func(context.Context) error { return client.Close() }, nil

	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoConnectTimeout, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		repo := mongostore.NewRepo(db)

		idxCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
		defer cancel()
		if err := repo.EnsureIndexes(idxCtx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info("mongo store initialized", logger.String("database", cfg.MongoDB))
		return repo, client.Disconnect, nil

	default:
		log.Warn("memory store selected, journal will not survive a restart")
		return nil, noop, nil
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Ideas v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Ideas %s (commit=%s, built=%s, go=%s, store=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion, a.cfg.Store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Apply the seed catalog and keep watching it
	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed reloader: %w", err)
		}
		a.logger.Info("seed reloader started",
			logger.Duration("interval", a.cfg.SeedReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.closeStore(shutdownCtx); err != nil {
		a.logger.Warnf("failed to close %s store: %v", a.cfg.Store, err)
	} else {
		a.logger.Infof("✅ %s store closed cleanly", a.cfg.Store)
	}

	_ = a.logger.Sync()
	a.logger.Info("✅ Ideas stopped cleanly")
	return nil
}
