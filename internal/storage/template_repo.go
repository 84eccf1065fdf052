package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// TaskTemplateRepo reads the task catalog. Templates are read-only to the
// engine; Upsert exists for catalog seeding only.
type TaskTemplateRepo struct {
	q querier
}

func NewTaskTemplateRepo(db *sql.DB) *TaskTemplateRepo {
	return &TaskTemplateRepo{q: db}
}

func (r *TaskTemplateRepo) Upsert(ctx context.Context, t TaskTemplate) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO task_templates (title, description, xp_reward, frequency)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title, frequency) DO UPDATE SET
			description = excluded.description,
			xp_reward = excluded.xp_reward
	`, t.Title, t.Description, t.XPReward, t.Frequency)
	if err != nil {
		return fmt.Errorf("template upsert: %w", err)
	}
	return nil
}

func (r *TaskTemplateRepo) Get(ctx context.Context, id int64) (*TaskTemplate, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, title, description, xp_reward, frequency
		FROM task_templates
		WHERE id = ?
	`, id)
	var t TaskTemplate
	var desc sql.NullString
	if err := row.Scan(&t.ID, &t.Title, &desc, &t.XPReward, &t.Frequency); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("template get: %w", err)
	}
	if desc.Valid {
		v := desc.String
		t.Description = &v
	}
	return &t, nil
}

func (r *TaskTemplateRepo) ListByFrequency(ctx context.Context, frequency string) ([]TaskTemplate, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, title, description, xp_reward, frequency
		FROM task_templates
		WHERE frequency = ?
		ORDER BY id ASC
	`, frequency)
	if err != nil {
		return nil, fmt.Errorf("template list: %w", err)
	}
	defer rows.Close()

	var out []TaskTemplate
	for rows.Next() {
		var t TaskTemplate
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &desc, &t.XPReward, &t.Frequency); err != nil {
			return nil, fmt.Errorf("template scan: %w", err)
		}
		if desc.Valid {
			v := desc.String
			t.Description = &v
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template rows: %w", err)
	}
	return out, nil
}
