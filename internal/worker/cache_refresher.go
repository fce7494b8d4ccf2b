package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RefreshFacade exposes the subset of application functionality required by the refresher.
type RefreshFacade interface {
	Idle() bool
	ReloadOrders(ctx context.Context) error
}

// CacheRefresher periodically refetches the order list so the cached
// collection tracks changes made outside the backoffice. A refresh is
// skipped while an edit or a confirmation is open, so a wholesale
// replace can never clobber workflow state mid-edit.
type CacheRefresher struct {
	facade   RefreshFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCacheRefresher constructs the background refresher.
func NewCacheRefresher(facade RefreshFacade, interval time.Duration, logger *slog.Logger) *CacheRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheRefresher{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background refreshing.
func (r *CacheRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the refresh loop to finish.
func (r *CacheRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CacheRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *CacheRefresher) refresh(ctx context.Context) {
	if !r.facade.Idle() {
		r.logger.Debug("order refresh skipped, workflow busy")
		return
	}
	if err := r.facade.ReloadOrders(ctx); err != nil {
		r.logger.Error("order refresh failed", slog.String("error", err.Error()))
	}
}
