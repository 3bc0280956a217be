package store

import (
	"context"
	"time"

	jitterbug "github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

// Reaper periodically evicts terminal jobs older than the configured TTL
// so the in-memory registry cannot grow without bound. A zero TTL turns
// eviction off.
type Reaper struct {
	store    Store
	ttl      time.Duration
	interval time.Duration
}

func NewReaper(store Store, ttl, interval time.Duration) *Reaper {
	return &Reaper{store: store, ttl: ttl, interval: interval}
}

func (r *Reaper) Run(ctx context.Context) {
	if r.ttl == 0 {
		zap.S().Named("reaper").Info("job eviction disabled")
		return
	}

	ticker := jitterbug.New(r.interval, &jitterbug.Norm{Stdev: 30 * time.Millisecond, Mean: 0})
	defer ticker.Stop()

	zap.S().Named("reaper").Infof("evicting terminal jobs older than %s every %s", r.ttl, r.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted, err := r.store.Job().DeleteTerminalBefore(ctx, time.Now().Add(-r.ttl))
			if err != nil {
				zap.S().Named("reaper").Warnw("failed to evict jobs", "error", err)
				continue
			}
			if evicted > 0 {
				zap.S().Named("reaper").Infow("evicted terminal jobs", "count", evicted)
			}
		}
	}
}
