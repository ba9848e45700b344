// Package backoff retries a readiness probe with capped exponential waits
// until it succeeds or the overall budget runs out. The store connectors use
// it to ride out a backend that is still starting.
package backoff

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/ideas/internal/logger"
)

// Policy controls the retry loop.
type Policy struct {
	Initial       time.Duration // first wait between attempts, doubled each time
	Max           time.Duration // cap for the wait
	PingTimeout   time.Duration // budget for a single probe
	Total         time.Duration // overall budget
	WarnThreshold int           // attempts logged as warnings before escalating to errors
}

// Validate rejects policies that would spin or never run.
func (p Policy) Validate() error {
	switch {
	case p.Total <= 0:
		return fmt.Errorf("total timeout must be > 0, got %v", p.Total)
	case p.Initial <= 0:
		return fmt.Errorf("retry interval must be > 0, got %v", p.Initial)
	case p.Max <= 0:
		return fmt.Errorf("max wait must be > 0, got %v", p.Max)
	case p.PingTimeout <= 0:
		return fmt.Errorf("ping timeout must be > 0, got %v", p.PingTimeout)
	case p.WarnThreshold < 0:
		return fmt.Errorf("warn threshold must be >= 0, got %d", p.WarnThreshold)
	}
	return nil
}

// Probe is one readiness check.
type Probe func(ctx context.Context) error

// Wait runs probe until it returns nil. target names the backend in logs
// (ex: "redis localhost:6379"). It returns the number of attempts made.
func Wait(ctx context.Context, target string, probe Probe, p Policy, log logger.Logger) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.Total)
	defer cancel()

	log = log.With(logger.String("target", target))
	log.Info("waiting for backend", logger.Duration("timeout", p.Total))

	start := time.Now()
	wait := p.Initial

	for attempt := 1; ; attempt++ {
		probeCtx, probeCancel := context.WithTimeout(ctx, p.PingTimeout)
		err := probe(probeCtx)
		probeCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("backend ready after retry",
					logger.Int("attempts", attempt),
					logger.Duration("elapsed", time.Since(start)))
			} else {
				log.Info("backend ready")
			}
			return attempt, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Error("backend unavailable, giving up",
				logger.Int("attempts", attempt),
				logger.Duration("timeout", p.Total),
				logger.Error(err))
			return attempt, fmt.Errorf("%s unavailable after %d attempts (timeout: %v): %w",
				target, attempt, p.Total, err)

		case <-timer.C:
			logRetry(log, attempt, timeLeft(ctx), wait, p.WarnThreshold, err)
			wait *= 2
			if wait > p.Max {
				wait = p.Max
			}
		}
	}
}

func logRetry(log logger.Logger, attempt int, remaining, next time.Duration, warnThreshold int, err error) {
	switch {
	case remaining < 10*time.Second:
		log.Error("backend still down, timeout approaching",
			logger.Int("attempt", attempt),
			logger.Duration("remaining", remaining),
			logger.Duration("next_retry_in", next),
			logger.Error(err))
	case attempt <= warnThreshold:
		log.Warn("backend not ready, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("next_retry_in", next),
			logger.Error(err))
	default:
		log.Error("backend still unavailable",
			logger.Int("attempt", attempt),
			logger.Duration("next_retry_in", next),
			logger.Error(err))
	}
}

// timeLeft returns the remaining time before the context deadline.
func timeLeft(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0
	}
	return time.Until(deadline)
}
