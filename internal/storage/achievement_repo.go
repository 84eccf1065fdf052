package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AchievementRepo struct {
	q querier
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{q: db}
}

func (r *AchievementRepo) WithTx(tx *sql.Tx) *AchievementRepo {
	return &AchievementRepo{q: tx}
}

func (r *AchievementRepo) Insert(ctx context.Context, a Achievement) (*Achievement, error) {
	a.ID = uuid.NewString()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO achievements (id, user_id, title, description, image_url, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.UserID, a.Title, a.Description, a.ImageURL, a.Category, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("achievement insert: %w", err)
	}
	return &a, nil
}

// Get is owner-scoped; a foreign or missing id both come back nil.
func (r *AchievementRepo) Get(ctx context.Context, id, userID string) (*Achievement, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, image_url, category, created_at
		FROM achievements
		WHERE id = ? AND user_id = ?
	`, id, userID)
	return scanAchievement(row)
}

func (r *AchievementRepo) ListByUser(ctx context.Context, userID string) ([]Achievement, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, title, description, image_url, category, created_at
		FROM achievements
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) Update(ctx context.Context, a Achievement) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE achievements
		SET title = ?, description = ?, image_url = ?, category = ?
		WHERE id = ? AND user_id = ?
	`, a.Title, a.Description, a.ImageURL, a.Category, a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("achievement update: %w", err)
	}
	return nil
}

func (r *AchievementRepo) Delete(ctx context.Context, id, userID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM achievements WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return fmt.Errorf("achievement delete: %w", err)
	}
	return nil
}

func scanAchievement(row scanner) (*Achievement, error) {
	var (
		a    Achievement
		desc sql.NullString
		img  sql.NullString
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Title, &desc, &img, &a.Category, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("achievement scan: %w", err)
	}
	if desc.Valid {
		v := desc.String
		a.Description = &v
	}
	if img.Valid {
		v := img.String
		a.ImageURL = &v
	}
	return &a, nil
}
