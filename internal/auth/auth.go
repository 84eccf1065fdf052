// Package auth is the credential collaborator: password hashing and opaque
// session tokens. The engine core never sees passwords or tokens, only the
// authenticated user id this package resolves.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// DefaultSessionTTL matches the original seven-day token lifetime.
const DefaultSessionTTL = 7 * 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or unknown")
)

type Service struct {
	users    *storage.UserRepo
	sessions *storage.SessionRepo
	ttl      time.Duration
	now      func() time.Time
}

func NewService(db *sql.DB, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		users:    storage.NewUserRepo(db),
		sessions: storage.NewSessionRepo(db),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock pins the clock, for expiry tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Register(ctx context.Context, name, email, password, role string) (*storage.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Insert(ctx, storage.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login checks the password and issues an opaque session token. The error is
// the same whether the email is unknown or the password wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := storage.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: s.now(),
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessions.Insert(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Verify resolves a token to the authenticated user id. Expired sessions are
// removed on sight.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", ErrSessionExpired
	}
	if s.now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return "", ErrSessionExpired
	}
	return sess.UserID, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
