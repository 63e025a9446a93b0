package db

import "database/sql"

func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			balance REAL NOT NULL DEFAULT 0,
			is_admin INTEGER NOT NULL DEFAULT 0,
			is_owner INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL UNIQUE,
			min_bet REAL NOT NULL,
			max_bet REAL NOT NULL,
			house_edge REAL NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1
		);`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ref TEXT NOT NULL UNIQUE,
			user_id INTEGER NOT NULL REFERENCES users(id),
			game_id INTEGER REFERENCES games(id),
			amount REAL NOT NULL,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			tx_hash TEXT,
			address TEXT,
			created_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS game_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ref TEXT NOT NULL UNIQUE,
			user_id INTEGER NOT NULL REFERENCES users(id),
			game_id INTEGER NOT NULL REFERENCES games(id),
			bet REAL NOT NULL,
			result TEXT NOT NULL,
			win REAL NOT NULL,
			created_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uid INTEGER NOT NULL,
			action TEXT NOT NULL,
			metadata TEXT,
			created_at INTEGER NOT NULL
		);`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON game_sessions(user_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
