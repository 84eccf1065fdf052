package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// XPEventRepo manages the append-only xp_events ledger. Rows only ever get
// inserted; totals are computed by summing deltas at read time.
type XPEventRepo struct {
	q querier
}

func NewXPEventRepo(db *sql.DB) *XPEventRepo {
	return &XPEventRepo{q: db}
}

// WithTx returns a copy of the repo bound to an open transaction.
func (r *XPEventRepo) WithTx(tx *sql.Tx) *XPEventRepo {
	return &XPEventRepo{q: tx}
}

func (r *XPEventRepo) Insert(ctx context.Context, userID, action string, xpDelta int, at time.Time) (*XPEvent, error) {
	ev := &XPEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		XPDelta:   xpDelta,
		CreatedAt: at,
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO xp_events (id, user_id, action, xp_delta, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, ev.ID, ev.UserID, ev.Action, ev.XPDelta, ev.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("xp event insert: %w", err)
	}
	return ev, nil
}

// TotalXP sums all deltas for the user; a user with no events totals 0.
func (r *XPEventRepo) TotalXP(ctx context.Context, userID string) (int, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(xp_delta), 0) FROM xp_events WHERE user_id = ?
	`, userID)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("xp total: %w", err)
	}
	return total, nil
}

// ListByUser returns the full event log, newest first.
func (r *XPEventRepo) ListByUser(ctx context.Context, userID string) ([]XPEvent, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, action, xp_delta, created_at
		FROM xp_events
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("xp event list: %w", err)
	}
	defer rows.Close()

	var out []XPEvent
	for rows.Next() {
		var ev XPEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Action, &ev.XPDelta, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("xp event scan: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("xp event rows: %w", err)
	}
	return out, nil
}
