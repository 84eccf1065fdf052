package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'student',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS task_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			xp_reward INTEGER NOT NULL CHECK (xp_reward >= 0),
			frequency TEXT NOT NULL CHECK (frequency IN ('daily', 'monthly', 'yearly')),
			UNIQUE(title, frequency)
		);`,
		// period_key pins an assignment to its frequency window
		// (day/month/year). The unique index is what makes concurrent
		// first-seeds of the same window lose cleanly instead of
		// inserting duplicate rows.
		`CREATE TABLE IF NOT EXISTS task_assignments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			task_id INTEGER NOT NULL,
			frequency TEXT NOT NULL,
			period_key TEXT NOT NULL,
			assigned_on DATE NOT NULL,
			is_completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			FOREIGN KEY(user_id) REFERENCES users(id),
			FOREIGN KEY(task_id) REFERENCES task_templates(id)
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_user_freq_period
			ON task_assignments(user_id, frequency, period_key);`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_user_day
			ON task_assignments(user_id, assigned_on);`,
		// Append-only ledger. Rows are never updated or deleted; total XP
		// and level are always derived by summing xp_delta.
		`CREATE TABLE IF NOT EXISTS xp_events (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			xp_delta INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_xp_events_user_created
			ON xp_events(user_id, created_at);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			category TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			skill_name TEXT NOT NULL,
			skill_level TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
