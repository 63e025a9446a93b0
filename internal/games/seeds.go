package games

import (
	"database/sql"
	"time"
)

// Seed is idempotent: rerunning it never duplicates games or accounts and
// never resets tuned values. games.type is unique, so existing rows win.
func Seed(db *sql.DB) error {
	defaults := []Game{
		{Type: TypeSlots, MinBet: 1, MaxBet: 1000, HouseEdge: 5, IsActive: true},
		{Type: TypeRoulette, MinBet: 1, MaxBet: 1000, HouseEdge: 5, IsActive: true},
		{Type: TypeBlackjack, MinBet: 1, MaxBet: 500, HouseEdge: 2, IsActive: true},
	}

	for _, g := range defaults {
		_, err := db.Exec(`
		INSERT INTO games(type,min_bet,max_bet,house_edge,is_active)
		VALUES (?,?,?,?,?)
		ON CONFLICT(type) DO NOTHING
		`, g.Type, g.MinBet, g.MaxBet, g.HouseEdge, g.IsActive)
		if err != nil {
			return err
		}
	}

	now := time.Now().Unix()
	accounts := []struct {
		username, email  string
		isAdmin, isOwner bool
	}{
		{"owner", "owner@casino.local", true, true},
		{"admin", "admin@casino.local", true, false},
	}

	for _, a := range accounts {
		_, err := db.Exec(`
		INSERT INTO users(username,email,balance,is_admin,is_owner,created_at)
		VALUES (?,?,0,?,?,?)
		ON CONFLICT(username) DO NOTHING
		`, a.username, a.email, a.isAdmin, a.isOwner, now)
		if err != nil {
			return err
		}
	}

	return nil
}
