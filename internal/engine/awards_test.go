package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

func TestAchievementCreateDeleteNetsZero(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	userID := newTestUser(t, svc)

	a, err := svc.CreateAchievement(ctx, userID, AchievementInput{
		Title:    "First 5k",
		Category: "fitness",
	})
	if err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}
	if got := mustTotalXP(t, svc, userID); got != AchievementXP {
		t.Fatalf("total after create=%d, want %d", got, AchievementXP)
	}

	if err := svc.DeleteAchievement(ctx, userID, a.ID); err != nil {
		t.Fatalf("DeleteAchievement: %v", err)
	}
	if got := mustTotalXP(t, svc, userID); got != 0 {
		t.Fatalf("total after delete=%d, want 0", got)
	}

	// Both sides of the pair stay in the ledger.
	events, err := svc.XPEventRepo().ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Action != ActionDeletedAchievement || events[0].XPDelta != -AchievementXP {
		t.Fatalf("newest event=%q/%d, want %q/%d", events[0].Action, events[0].XPDelta, ActionDeletedAchievement, -AchievementXP)
	}
	if events[1].Action != ActionAddedAchievement || events[1].XPDelta != AchievementXP {
		t.Fatalf("oldest event=%q/%d, want %q/%d", events[1].Action, events[1].XPDelta, ActionAddedAchievement, AchievementXP)
	}
}

func TestSkillCreateDeleteNetsZero(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	userID := newTestUser(t, svc)

	sk, err := svc.CreateSkill(ctx, userID, SkillInput{Name: "Guitar", Level: "beginner"})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if got := mustTotalXP(t, svc, userID); got != SkillXP {
		t.Fatalf("total after create=%d, want %d", got, SkillXP)
	}

	if err := svc.DeleteSkill(ctx, userID, sk.ID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	if got := mustTotalXP(t, svc, userID); got != 0 {
		t.Fatalf("total after delete=%d, want 0", got)
	}
	if n := countEvents(t, svc, userID); n != 2 {
		t.Fatalf("got %d events, want 2", n)
	}
}

func TestUpdatesAreXPNeutral(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	userID := newTestUser(t, svc)

	a, err := svc.CreateAchievement(ctx, userID, AchievementInput{Title: "Old title", Category: "misc"})
	if err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}
	sk, err := svc.CreateSkill(ctx, userID, SkillInput{Name: "Chess", Level: "beginner"})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	before := mustTotalXP(t, svc, userID)

	updatedA, err := svc.UpdateAchievement(ctx, userID, a.ID, AchievementInput{Title: "New title", Category: "misc"})
	if err != nil {
		t.Fatalf("UpdateAchievement: %v", err)
	}
	if updatedA.Title != "New title" {
		t.Fatalf("title=%q, want New title", updatedA.Title)
	}

	updatedS, err := svc.UpdateSkill(ctx, userID, sk.ID, SkillInput{Name: "Chess", Level: "intermediate"})
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}
	if updatedS.SkillLevel != "intermediate" {
		t.Fatalf("level=%q, want intermediate", updatedS.SkillLevel)
	}

	if got := mustTotalXP(t, svc, userID); got != before {
		t.Fatalf("total changed on update: %d -> %d", before, got)
	}
	if n := countEvents(t, svc, userID); n != 2 {
		t.Fatalf("got %d events after updates, want 2", n)
	}
}

func TestAwardValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	userID := newTestUser(t, svc)

	if _, err := svc.CreateAchievement(ctx, userID, AchievementInput{Title: "  ", Category: "misc"}); !IsValidationError(err) {
		t.Fatalf("blank title err=%v, want validation error", err)
	}
	if _, err := svc.CreateAchievement(ctx, userID, AchievementInput{Title: "Ok", Category: ""}); !IsValidationError(err) {
		t.Fatalf("blank category err=%v, want validation error", err)
	}
	if _, err := svc.CreateSkill(ctx, userID, SkillInput{Name: "", Level: "beginner"}); !IsValidationError(err) {
		t.Fatalf("blank skill name err=%v, want validation error", err)
	}
	if _, err := svc.CreateSkill(ctx, userID, SkillInput{Name: "Guitar", Level: " "}); !IsValidationError(err) {
		t.Fatalf("blank skill level err=%v, want validation error", err)
	}

	// Rejected inputs never touch the ledger.
	if n := countEvents(t, svc, userID); n != 0 {
		t.Fatalf("got %d events after rejected inputs, want 0", n)
	}
}

func TestAwardNotFoundAndOwnership(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	owner := newTestUser(t, svc)
	stranger := newTestUser(t, svc)

	a, err := svc.CreateAchievement(ctx, owner, AchievementInput{Title: "Mine", Category: "misc"})
	if err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}

	if err := svc.DeleteAchievement(ctx, stranger, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete err=%v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateAchievement(ctx, stranger, a.ID, AchievementInput{Title: "Stolen", Category: "misc"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update err=%v, want ErrNotFound", err)
	}
	if err := svc.DeleteSkill(ctx, owner, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing skill delete err=%v, want ErrNotFound", err)
	}

	// The failed foreign delete must not have appended a reversal.
	if got := mustTotalXP(t, svc, owner); got != AchievementXP {
		t.Fatalf("owner total=%d, want %d", got, AchievementXP)
	}
	if got := mustTotalXP(t, svc, stranger); got != 0 {
		t.Fatalf("stranger total=%d, want 0", got)
	}
}

func TestLedgerLifecycleAcrossSources(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// A single 50 XP daily task makes the rotation pick deterministic.
	err := svc.TemplateRepo().Upsert(ctx, storage.TaskTemplate{
		Title: "Morning run", XPReward: 50, Frequency: "daily",
	})
	if err != nil {
		t.Fatalf("upsert template: %v", err)
	}
	userID := newTestUser(t, svc)

	level, err := svc.Level(ctx, userID)
	if err != nil {
		t.Fatalf("Level: %v", err)
	}
	if level.Level != 1 || level.Tier != TierNewbie {
		t.Fatalf("fresh user level=%d tier=%q, want 1/Newbie", level.Level, level.Tier)
	}

	assignments, err := svc.GetOrSeedTodayAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.CompleteAssignment(ctx, userID, assignments[0].Assignment.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	level, _ = svc.Level(ctx, userID)
	if level.TotalXP != 50 || level.Level != 1 || level.Tier != TierNewbie {
		t.Fatalf("after completion: total=%d level=%d tier=%q, want 50/1/Newbie", level.TotalXP, level.Level, level.Tier)
	}

	ach, err := svc.CreateAchievement(ctx, userID, AchievementInput{Title: "Streak", Category: "habits"})
	if err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}
	level, _ = svc.Level(ctx, userID)
	if level.TotalXP != 100 || level.Level != 2 || level.Tier != TierLearner {
		t.Fatalf("after achievement: total=%d level=%d tier=%q, want 100/2/Learner", level.TotalXP, level.Level, level.Tier)
	}

	if err := svc.DeleteAchievement(ctx, userID, ach.ID); err != nil {
		t.Fatalf("DeleteAchievement: %v", err)
	}
	level, _ = svc.Level(ctx, userID)
	if level.TotalXP != 50 || level.Level != 1 || level.Tier != TierNewbie {
		t.Fatalf("after reversal: total=%d level=%d tier=%q, want 50/1/Newbie", level.TotalXP, level.Level, level.Tier)
	}

	summary, err := svc.GetXPSummary(ctx, userID)
	if err != nil {
		t.Fatalf("GetXPSummary: %v", err)
	}
	if len(summary.Events) != 3 {
		t.Fatalf("got %d events, want 3", len(summary.Events))
	}
	if summary.TotalXP != 50 {
		t.Fatalf("summary total=%d, want 50", summary.TotalXP)
	}
}

func TestGetProfile(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	userID := newTestUser(t, svc)
	if _, err := svc.CreateSkill(ctx, userID, SkillInput{Name: "Cooking", Level: "beginner"}); err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if _, err := svc.CreateAchievement(ctx, userID, AchievementInput{Title: "First dish", Category: "cooking"}); err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}

	p, err := svc.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.User.ID != userID {
		t.Fatalf("profile user=%q, want %q", p.User.ID, userID)
	}
	if p.XP.TotalXP != SkillXP+AchievementXP {
		t.Fatalf("profile total=%d, want %d", p.XP.TotalXP, SkillXP+AchievementXP)
	}
	if len(p.Skills) != 1 || len(p.Achievements) != 1 {
		t.Fatalf("skills=%d achievements=%d, want 1 each", len(p.Skills), len(p.Achievements))
	}

	if _, err := svc.GetProfile(ctx, "no-such-user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing user err=%v, want ErrNotFound", err)
	}
}
