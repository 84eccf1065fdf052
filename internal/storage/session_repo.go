package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type SessionRepo struct {
	q querier
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{q: db}
}

func (r *SessionRepo) Insert(ctx context.Context, s Session) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("session insert: %w", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, token string) (*Session, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?
	`, token)
	var s Session
	if err := row.Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session scan: %w", err)
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
