// Package resource implements admission control for search traffic:
// a concurrency cap and an optional query-rate limit.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds search admission limits.
type Config struct {
	// MaxConcurrentSearches caps the number of searches in flight.
	// If 0, concurrency is unlimited.
	MaxConcurrentSearches int64

	// SearchesPerSecond is the sustained query rate limit.
	// If 0, unlimited.
	SearchesPerSecond float64

	// Burst is the rate limiter burst size. If 0 while a rate limit is
	// set, it defaults to 1.
	Burst int
}

// Controller gates search admission. A nil *Controller admits everything,
// so callers never need to branch on whether limits are configured.
type Controller struct {
	cfg Config

	searchSem *semaphore.Weighted // nil if unlimited
	limiter   *rate.Limiter       // nil if unlimited

	inFlight atomic.Int64
}

// NewController creates a controller from the given limits.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentSearches > 0 {
		c.searchSem = semaphore.NewWeighted(cfg.MaxConcurrentSearches)
	}

	if cfg.SearchesPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.SearchesPerSecond), burst)
	}

	return c
}

// AcquireSearch admits one search, blocking on the rate limit and on a free
// concurrency slot until ctx is canceled. Every successful acquire must be
// paired with ReleaseSearch.
func (c *Controller) AcquireSearch(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.searchSem != nil {
		if err := c.searchSem.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquireSearch admits one search without blocking. Returns false when
// either limit would be exceeded.
func (c *Controller) TryAcquireSearch() bool {
	if c == nil {
		return true
	}

	if c.limiter != nil && !c.limiter.Allow() {
		return false
	}

	if c.searchSem != nil && !c.searchSem.TryAcquire(1) {
		// The limiter token is not refunded; the next Allow simply
		// comes a little later.
		return false
	}

	c.inFlight.Add(1)
	return true
}

// ReleaseSearch returns the slot taken by a successful acquire.
func (c *Controller) ReleaseSearch() {
	if c == nil {
		return
	}

	if c.searchSem != nil {
		c.searchSem.Release(1)
	}
	c.inFlight.Add(-1)
}

// InFlight returns the number of searches currently admitted.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}
