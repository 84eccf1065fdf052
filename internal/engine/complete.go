package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

type CompleteResult struct {
	AssignmentID int64
	TaskTitle    string
	XPAwarded    int
	LevelBefore  LevelDescriptor
	LevelAfter   LevelDescriptor
	LevelUp      bool
}

// CompleteAssignment transitions an assignment from pending to completed,
// exactly once, and appends the matching +xp_reward ledger event. Both writes
// run in one transaction: a failed ledger append rolls the flip back.
//
// The transition is terminal and not idempotent: a second call fails with
// ErrAlreadyCompleted and appends nothing.
func (s *Service) CompleteAssignment(ctx context.Context, userID string, assignmentID int64) (*CompleteResult, error) {
	before, err := s.Level(ctx, userID)
	if err != nil {
		return nil, err
	}

	var res CompleteResult
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		assignments := s.assignments.WithTx(tx)

		at, err := assignments.GetJoined(ctx, assignmentID, userID)
		if err != nil {
			return err
		}
		if at == nil {
			return fmt.Errorf("assignment %d: %w", assignmentID, ErrNotFound)
		}
		if at.Assignment.IsCompleted {
			return fmt.Errorf("assignment %d: %w", assignmentID, ErrAlreadyCompleted)
		}

		flipped, err := assignments.MarkCompleted(ctx, assignmentID, s.now())
		if err != nil {
			return err
		}
		if !flipped {
			// Lost a completion race after the read above.
			return fmt.Errorf("assignment %d: %w", assignmentID, ErrAlreadyCompleted)
		}

		if _, err := s.events.WithTx(tx).Insert(ctx, userID, ActionCompletedTask, at.Task.XPReward, s.now()); err != nil {
			return err
		}

		res = CompleteResult{
			AssignmentID: assignmentID,
			TaskTitle:    at.Task.Title,
			XPAwarded:    at.Task.XPReward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	after := Describe(before.TotalXP + res.XPAwarded)
	res.LevelBefore = before
	res.LevelAfter = after
	res.LevelUp = after.Level > before.Level
	return &res, nil
}
