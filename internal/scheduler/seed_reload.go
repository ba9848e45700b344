package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
	"github.com/MrSnakeDoc/ideas/internal/sources/seed"
)

// SeedReloader applies the seed catalog on start, on every tick and on
// manual trigger. Categories missing by name are created each time; starter
// ideas only on the first successful load of an empty journal.
type SeedReloader struct {
	loader        *seed.Loader
	service       *journal.Service
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger <-chan struct{}

	mu          sync.Mutex
	firstLoaded bool
}

// NewSeedReloader creates a new seed reloader. interval 0 disables the
// periodic reload; manualTrigger may be nil.
func NewSeedReloader(
	seedFile string,
	service *journal.Service,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seed.NewLoader(seedFile),
		service:       service,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the seed once and then keeps watching for ticks and triggers.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed load failed: %w", err)
	}

	go func() {
		var tick <-chan time.Time
		if sr.interval > 0 {
			ticker := time.NewTicker(sr.interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-tick:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed", logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed", logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader. It is safe to call more than once.
func (sr *SeedReloader) Stop() {
	sr.stopOnce.Do(func() { close(sr.stopCh) })
}

// Reload reads the seed file and applies it through the journal service.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.logger.Info("reloading seed", logger.String("file", sr.loader.Path()))

	file, err := sr.loader.Load()
	if err != nil {
		return err
	}

	created := 0
	for _, in := range seed.MissingCategories(file, sr.service.ListCategories(ctx)) {
		if _, err := sr.service.CreateCategory(ctx, in); err != nil {
			return fmt.Errorf("failed to create seed category %q: %w", in.Name, err)
		}
		created++
	}

	starters := 0
	if !sr.firstLoaded {
		// The emptiness check and the creates are separate service calls. A
		// user create landing in between on first boot still gets the
		// starter ideas next to it; that race is accepted.
		if sr.service.Stats(ctx).TotalIdeas == 0 {
			for _, in := range seed.IdeaInputs(file, sr.service.ListCategories(ctx)) {
				if _, err := sr.service.CreateIdea(ctx, in); err != nil {
					return fmt.Errorf("failed to create starter idea %q: %w", in.Title, err)
				}
				starters++
			}
		}
		sr.firstLoaded = true
	}

	sr.logger.Info("seed applied",
		logger.Int("categories_created", created),
		logger.Int("starter_ideas", starters))

	return nil
}
