package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AssignedTask is the joined assignment+template view returned to callers.
type AssignedTask struct {
	Assignment TaskAssignment
	Task       TaskTemplate
}

type TaskAssignmentRepo struct {
	q querier
}

func NewTaskAssignmentRepo(db *sql.DB) *TaskAssignmentRepo {
	return &TaskAssignmentRepo{q: db}
}

// WithTx returns a copy of the repo bound to an open transaction.
func (r *TaskAssignmentRepo) WithTx(tx *sql.Tx) *TaskAssignmentRepo {
	return &TaskAssignmentRepo{q: tx}
}

// Insert creates one pending assignment. Losing a race on the
// (user_id, frequency, period_key) unique index surfaces as ErrConflict.
func (r *TaskAssignmentRepo) Insert(ctx context.Context, a TaskAssignment) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO task_assignments (user_id, task_id, frequency, period_key, assigned_on, is_completed)
		VALUES (?, ?, ?, ?, ?, 0)
	`, a.UserID, a.TaskID, a.Frequency, a.PeriodKey, a.AssignedOn)
	if err != nil {
		return 0, mapConflict(err, "assignment insert")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("assignment last insert id: %w", err)
	}
	return id, nil
}

// CountOnDay reports how many assignments of any frequency the user already
// has for the given day key.
func (r *TaskAssignmentRepo) CountOnDay(ctx context.Context, userID, day string) (int, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM task_assignments WHERE user_id = ? AND assigned_on = ?
	`, userID, day)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("assignment day count: %w", err)
	}
	return n, nil
}

// ExistsInPeriod reports whether the user already holds an assignment for the
// frequency's current window.
func (r *TaskAssignmentRepo) ExistsInPeriod(ctx context.Context, userID, frequency, periodKey string) (bool, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT 1 FROM task_assignments
		WHERE user_id = ? AND frequency = ? AND period_key = ?
		LIMIT 1
	`, userID, frequency, periodKey)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("assignment period check: %w", err)
	}
	return true, nil
}

// GetJoined fetches one assignment with its template, scoped to the owner.
// Returns nil when the row is absent or owned by someone else.
func (r *TaskAssignmentRepo) GetJoined(ctx context.Context, id int64, userID string) (*AssignedTask, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT a.id, a.user_id, a.task_id, a.frequency, a.period_key, a.assigned_on,
			a.is_completed, a.completed_at,
			t.id, t.title, t.description, t.xp_reward, t.frequency
		FROM task_assignments a
		JOIN task_templates t ON a.task_id = t.id
		WHERE a.id = ? AND a.user_id = ?
	`, id, userID)
	return scanAssignedTask(row)
}

// ListJoinedByUser returns all of a user's assignments with template details,
// ordered by frequency (alphabetic: daily, monthly, yearly) then id.
func (r *TaskAssignmentRepo) ListJoinedByUser(ctx context.Context, userID string) ([]AssignedTask, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.task_id, a.frequency, a.period_key, a.assigned_on,
			a.is_completed, a.completed_at,
			t.id, t.title, t.description, t.xp_reward, t.frequency
		FROM task_assignments a
		JOIN task_templates t ON a.task_id = t.id
		WHERE a.user_id = ?
		ORDER BY a.frequency ASC, a.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("assignment list: %w", err)
	}
	defer rows.Close()

	var out []AssignedTask
	for rows.Next() {
		at, err := scanAssignedTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("assignment rows: %w", err)
	}
	return out, nil
}

// MarkCompleted flips an assignment to completed. The state machine guard
// lives in the WHERE clause: a second call matches zero rows.
func (r *TaskAssignmentRepo) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE task_assignments
		SET is_completed = 1, completed_at = ?
		WHERE id = ? AND is_completed = 0
	`, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("assignment complete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("assignment complete rows: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssignedTask(row scanner) (*AssignedTask, error) {
	var (
		a           TaskAssignment
		t           TaskTemplate
		isCompleted int
		completedAt sql.NullTime
		desc        sql.NullString
	)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.TaskID, &a.Frequency, &a.PeriodKey, &a.AssignedOn,
		&isCompleted, &completedAt,
		&t.ID, &t.Title, &desc, &t.XPReward, &t.Frequency,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("assignment scan: %w", err)
	}
	a.IsCompleted = isCompleted != 0
	if completedAt.Valid {
		v := completedAt.Time
		a.CompletedAt = &v
	}
	if desc.Valid {
		v := desc.String
		t.Description = &v
	}
	return &AssignedTask{Assignment: a, Task: t}, nil
}
