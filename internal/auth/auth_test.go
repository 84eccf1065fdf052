package auth

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newTestDB(t), DefaultSessionTTL)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ada", "ADA@Example.com ", "hunter22", "")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email)
	require.Equal(t, "student", u.Role)
	require.NotEqual(t, "hunter22", u.PasswordHash)

	sess, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	userID, err := svc.Verify(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newTestDB(t), DefaultSessionTTL)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Ada", "ada@example.com", "different", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(newTestDB(t), DefaultSessionTTL)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := NewService(newTestDB(t), DefaultSessionTTL)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "ada@example.com", "hunter22", "")
	require.Error(t, err)
	_, err = svc.Register(ctx, "Ada", "", "hunter22", "")
	require.Error(t, err)
	_, err = svc.Register(ctx, "Ada", "ada@example.com", "", "")
	require.Error(t, err)
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(newTestDB(t), time.Hour).WithClock(func() time.Time { return now })
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, sess.Token)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = svc.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, ErrSessionExpired)

	// Expired sessions are removed on sight, so a later check inside the
	// original window still fails.
	now = now.Add(-2 * time.Hour)
	_, err = svc.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestLogout(t *testing.T) {
	svc := NewService(newTestDB(t), DefaultSessionTTL)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	_, err = svc.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, ErrSessionExpired)

	// Logging out twice is a no-op.
	require.NoError(t, svc.Logout(ctx, sess.Token))
}
