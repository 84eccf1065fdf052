package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

func newTestService(t *testing.T, opts ...Option) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, opts...)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

var testUserSeq int

func newTestUser(t *testing.T, svc *Service) string {
	t.Helper()
	ctx := context.Background()
	testUserSeq++
	u, err := svc.UserRepo().Insert(ctx, storage.User{
		Name:         fmt.Sprintf("Tester %d", testUserSeq),
		Email:        fmt.Sprintf("tester%d@example.com", testUserSeq),
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return u.ID
}

func seedTestCatalog(t *testing.T, svc *Service) {
	t.Helper()
	if _, err := svc.SeedCatalog(context.Background()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func countEvents(t *testing.T, svc *Service, userID string) int {
	t.Helper()
	events, err := svc.XPEventRepo().ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	return len(events)
}

func mustTotalXP(t *testing.T, svc *Service, userID string) int {
	t.Helper()
	total, err := svc.TotalXP(context.Background(), userID)
	if err != nil {
		t.Fatalf("total xp: %v", err)
	}
	return total
}

func fixedClock(at time.Time) Option {
	return WithClock(func() time.Time { return at })
}
