package casino

import (
	"sync"

	"casino-platform/internal/monitoring"
)

type rtpTotals struct {
	wagered float64
	paid    float64
}

// RTPTracker observes the realized return-to-player ratio per game type and
// mirrors it into the rtp gauge. It is diagnostic only; the configured
// house edge is what actually shapes payouts.
type RTPTracker struct {
	perGame map[string]*rtpTotals
	mu      sync.Mutex
}

func NewRTPTracker() *RTPTracker {
	return &RTPTracker{
		perGame: make(map[string]*rtpTotals),
	}
}

func (t *RTPTracker) Record(game string, bet, payout float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	totals, ok := t.perGame[game]
	if !ok {
		totals = &rtpTotals{}
		t.perGame[game] = totals
	}
	totals.wagered += bet
	totals.paid += payout

	if totals.wagered > 0 {
		monitoring.RTPRatio.WithLabelValues(game).Set(totals.paid / totals.wagered)
	}
}

func (t *RTPTracker) Ratio(game string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	totals, ok := t.perGame[game]
	if !ok || totals.wagered == 0 {
		return 0
	}
	return totals.paid / totals.wagered
}
