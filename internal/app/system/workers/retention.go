// internal/app/system/workers/retention.go
package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	pageviewstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/pageviews"
)

// RetentionCleanup is a background worker that prunes pageview rows
// older than the retention window. The pageview table is append-only
// and unbounded without it.
type RetentionCleanup struct {
	pageviews *pageviewstore.Store
	log       *zap.Logger
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewRetentionCleanup creates a retention worker.
//
// Parameters:
//   - pvStore: the pageviews store
//   - logger: zap logger for logging
//   - interval: how often to prune (e.g., 24 hours)
//   - retention: how long pageview rows are kept (e.g., 365 days)
func NewRetentionCleanup(pvStore *pageviewstore.Store, logger *zap.Logger, interval, retention time.Duration) *RetentionCleanup {
	return &RetentionCleanup{
		pageviews: pvStore,
		log:       logger,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the background prune loop. One prune runs immediately so
// a long-stopped deployment catches up without waiting a full interval.
func (w *RetentionCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("pageview retention worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("retention", w.retention))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *RetentionCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("pageview retention worker stopped")
}

func (w *RetentionCleanup) run() {
	defer w.wg.Done()

	w.prune()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.prune()
		}
	}
}

func (w *RetentionCleanup) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.pageviews.DeleteBefore(ctx, time.Now().Add(-w.retention))
	if err != nil {
		w.log.Error("pageview prune failed", zap.Error(err))
		return
	}

	if count > 0 {
		w.log.Info("pruned old pageviews", zap.Int64("count", count))
	}
}
