package server

import (
	"context"
	"log/slog"
	"time"
)

// minPruneInterval is the shortest interval PruneIdle ticks at.
const minPruneInterval = time.Millisecond

// IdlePruner drops sessions that have not changed since cutoff.
type IdlePruner interface {
	PruneIdle(cutoff time.Time) int
}

// PruneIdle removes sessions idle for longer than ttl every interval until
// ctx is done. Intervals below a millisecond are raised to one.
func PruneIdle(ctx context.Context, p IdlePruner, ttl, interval time.Duration, logger *slog.Logger) {
	if interval < minPruneInterval {
		interval = minPruneInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := p.PruneIdle(now.Add(-ttl)); n > 0 && logger != nil {
				logger.Info("pruned idle sessions", "count", n)
			}
		}
	}
}
