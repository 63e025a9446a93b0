package rounds

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper is a background job that periodically drops expired rounds from
// the in-memory store. A round that expires unresolved forfeits its held
// bet; the settlement never happened, so no ledger row exists for it.
type Sweeper struct {
	store    *MemoryStore
	interval time.Duration
	log      *zap.Logger
}

func NewSweeper(store *MemoryStore, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{store: store, interval: interval, log: log}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.store.Sweep(); n > 0 {
				s.log.Info("expired rounds swept", zap.Int("count", n))
			}
		}
	}
}
