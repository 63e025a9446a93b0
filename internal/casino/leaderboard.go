package casino

import (
	"sort"
	"sync"
)

type LeaderboardEntry struct {
	UID    int64   `json:"uid"`
	Profit float64 `json:"profit"`
}

// Leaderboard aggregates net profit per user from settled rounds. It is
// in-memory and rebuilt from scratch on restart.
type Leaderboard struct {
	data map[int64]float64
	mu   sync.Mutex
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		data: make(map[int64]float64),
	}
}

func (l *Leaderboard) Record(uid int64, profit float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.data[uid] += profit
}

func (l *Leaderboard) Top(n int) []LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LeaderboardEntry, 0, len(l.data))
	for uid, profit := range l.data {
		entries = append(entries, LeaderboardEntry{UID: uid, Profit: profit})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Profit > entries[j].Profit
	})

	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
