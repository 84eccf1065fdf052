package engine

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

func TestRotationSeedsOnePerFrequency(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, fixedClock(now), WithRand(rand.New(rand.NewSource(1))))
	defer cleanup()
	ctx := context.Background()

	seedTestCatalog(t, svc)
	userID := newTestUser(t, svc)

	got, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("GetOrSeedTodayAssignments: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d assignments, want 3", len(got))
	}

	wantKeys := map[string]string{
		"daily":   "2024-03-15",
		"monthly": "2024-03",
		"yearly":  "2024",
	}
	for i, freq := range []string{"daily", "monthly", "yearly"} {
		at := got[i]
		if at.Assignment.Frequency != freq {
			t.Fatalf("assignment %d frequency=%q, want %q", i, at.Assignment.Frequency, freq)
		}
		if at.Task.Frequency != freq {
			t.Fatalf("assignment %d template frequency=%q, want %q", i, at.Task.Frequency, freq)
		}
		if at.Assignment.PeriodKey != wantKeys[freq] {
			t.Fatalf("%s period key=%q, want %q", freq, at.Assignment.PeriodKey, wantKeys[freq])
		}
		if at.Assignment.AssignedOn != "2024-03-15" {
			t.Fatalf("%s assigned_on=%q, want 2024-03-15", freq, at.Assignment.AssignedOn)
		}
		if at.Assignment.IsCompleted {
			t.Fatalf("%s assignment seeded as completed", freq)
		}
	}
}

func TestRotationIdempotentSameDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, fixedClock(now))
	defer cleanup()
	ctx := context.Background()

	seedTestCatalog(t, svc)
	userID := newTestUser(t, svc)

	first, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("second call returned %d assignments, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Assignment.ID != first[i].Assignment.ID {
			t.Fatalf("assignment %d id changed: %d -> %d", i, first[i].Assignment.ID, second[i].Assignment.ID)
		}
	}
}

func TestRotationNextDaySeedsDailyOnly(t *testing.T) {
	cur := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, WithClock(func() time.Time { return cur }))
	defer cleanup()
	ctx := context.Background()

	seedTestCatalog(t, svc)
	userID := newTestUser(t, svc)

	if _, err := svc.GetOrSeedTodayAssignments(ctx, userID); err != nil {
		t.Fatalf("day one: %v", err)
	}

	cur = cur.AddDate(0, 0, 1)
	got, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("day two: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d assignments after second day, want 4", len(got))
	}

	perFreq := map[string]int{}
	for _, at := range got {
		perFreq[at.Assignment.Frequency]++
	}
	if perFreq["daily"] != 2 {
		t.Fatalf("daily assignments=%d, want 2", perFreq["daily"])
	}
	if perFreq["monthly"] != 1 || perFreq["yearly"] != 1 {
		t.Fatalf("monthly=%d yearly=%d, want 1 each", perFreq["monthly"], perFreq["yearly"])
	}
}

func TestRotationSkipsEmptyFrequencyPool(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, fixedClock(now))
	defer cleanup()
	ctx := context.Background()

	// Only a daily template exists; monthly and yearly pools are empty.
	err := svc.TemplateRepo().Upsert(ctx, storage.TaskTemplate{
		Title: "Stretch", XPReward: 10, Frequency: "daily",
	})
	if err != nil {
		t.Fatalf("upsert template: %v", err)
	}
	userID := newTestUser(t, svc)

	got, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("GetOrSeedTodayAssignments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d assignments, want 1", len(got))
	}
	if got[0].Task.Title != "Stretch" {
		t.Fatalf("task=%q, want Stretch", got[0].Task.Title)
	}
}

func TestRotationConcurrentFirstSeed(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, fixedClock(now))
	defer cleanup()
	ctx := context.Background()

	seedTestCatalog(t, svc)
	userID := newTestUser(t, svc)

	// N callers race the first seed of the day; the unique index decides the
	// winner and the losers must still come back clean.
	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.GetOrSeedTodayAssignments(ctx, userID)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}

	got, err := svc.AssignmentRepo().ListJoinedByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d assignments after %d concurrent calls, want 3", len(got), callers)
	}
	perFreq := map[string]int{}
	for _, at := range got {
		perFreq[at.Assignment.Frequency]++
	}
	for _, freq := range []string{"daily", "monthly", "yearly"} {
		if perFreq[freq] != 1 {
			t.Fatalf("%s assignments=%d, want 1", freq, perFreq[freq])
		}
	}
}

func TestRotationIsolatedPerUser(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, cleanup := newTestService(t, fixedClock(now))
	defer cleanup()
	ctx := context.Background()

	seedTestCatalog(t, svc)
	alice := newTestUser(t, svc)
	bob := newTestUser(t, svc)

	if _, err := svc.GetOrSeedTodayAssignments(ctx, alice); err != nil {
		t.Fatalf("seed alice: %v", err)
	}
	got, err := svc.GetOrSeedTodayAssignments(ctx, bob)
	if err != nil {
		t.Fatalf("seed bob: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("bob got %d assignments, want 3", len(got))
	}
	for _, at := range got {
		if at.Assignment.UserID != bob {
			t.Fatalf("assignment %d owned by %q, want %q", at.Assignment.ID, at.Assignment.UserID, bob)
		}
	}
}
