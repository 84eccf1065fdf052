package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SkillRepo struct {
	q querier
}

func NewSkillRepo(db *sql.DB) *SkillRepo {
	return &SkillRepo{q: db}
}

func (r *SkillRepo) WithTx(tx *sql.Tx) *SkillRepo {
	return &SkillRepo{q: tx}
}

func (r *SkillRepo) Insert(ctx context.Context, s Skill) (*Skill, error) {
	s.ID = uuid.NewString()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO skills (id, user_id, skill_name, skill_level, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.UserID, s.SkillName, s.SkillLevel, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("skill insert: %w", err)
	}
	return &s, nil
}

func (r *SkillRepo) Get(ctx context.Context, id, userID string) (*Skill, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, skill_name, skill_level, created_at
		FROM skills
		WHERE id = ? AND user_id = ?
	`, id, userID)
	var s Skill
	if err := row.Scan(&s.ID, &s.UserID, &s.SkillName, &s.SkillLevel, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("skill scan: %w", err)
	}
	return &s, nil
}

func (r *SkillRepo) ListByUser(ctx context.Context, userID string) ([]Skill, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, skill_name, skill_level, created_at
		FROM skills
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("skill list: %w", err)
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.SkillLevel, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("skill scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("skill rows: %w", err)
	}
	return out, nil
}

func (r *SkillRepo) Update(ctx context.Context, s Skill) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE skills
		SET skill_name = ?, skill_level = ?
		WHERE id = ? AND user_id = ?
	`, s.SkillName, s.SkillLevel, s.ID, s.UserID)
	if err != nil {
		return fmt.Errorf("skill update: %w", err)
	}
	return nil
}

func (r *SkillRepo) Delete(ctx context.Context, id, userID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM skills WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return fmt.Errorf("skill delete: %w", err)
	}
	return nil
}
