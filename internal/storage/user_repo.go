package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserRepo struct {
	q querier
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{q: db}
}

func (r *UserRepo) Insert(ctx context.Context, u User) (*User, error) {
	u.ID = uuid.NewString()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = "student"
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		return nil, mapConflict(err, "user insert")
	}
	return &u, nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = ?
	`, id)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?
	`, email)
	return scanUser(row)
}

func scanUser(row scanner) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}
	return &u, nil
}
