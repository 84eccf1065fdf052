package engine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// GetOrSeedTodayAssignments guarantees the user holds one assignment per
// frequency window and returns the joined assignment+template view, ordered
// by frequency.
//
// Seeding is conservative: if any assignment already carries today's date the
// whole step is skipped. Otherwise each frequency is checked against its own
// period window (day, month, year) inside one transaction, and one template
// is picked uniformly at random for every window that is still empty. A
// frequency with no catalog templates is skipped without error.
//
// Concurrent first-calls for the same day are serialized by the storage-level
// unique index on (user_id, frequency, period_key): the losing transaction
// rolls back and the reader simply returns the winner's rows.
func (s *Service) GetOrSeedTodayAssignments(ctx context.Context, userID string) ([]storage.AssignedTask, error) {
	now := s.now()
	today := dayKey(now)

	n, err := s.assignments.CountOnDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.seedAssignments(ctx, userID); err != nil && !errors.Is(err, storage.ErrConflict) {
			return nil, err
		}
	}

	return s.assignments.ListJoinedByUser(ctx, userID)
}

func (s *Service) seedAssignments(ctx context.Context, userID string) error {
	now := s.now()
	today := dayKey(now)

	// Catalog reads happen outside the transaction: templates are
	// read-only to the engine.
	candidates := make(map[Frequency][]storage.TaskTemplate, len(Frequencies))
	for _, freq := range Frequencies {
		list, err := s.templates.ListByFrequency(ctx, string(freq))
		if err != nil {
			return err
		}
		candidates[freq] = list
	}

	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		assignments := s.assignments.WithTx(tx)
		for _, freq := range Frequencies {
			pool := candidates[freq]
			if len(pool) == 0 {
				continue
			}
			key := periodKey(freq, now)
			exists, err := assignments.ExistsInPeriod(ctx, userID, string(freq), key)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			tmpl := pool[s.pickIndex(len(pool))]
			if _, err := assignments.Insert(ctx, storage.TaskAssignment{
				UserID:     userID,
				TaskID:     tmpl.ID,
				Frequency:  string(freq),
				PeriodKey:  key,
				AssignedOn: today,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
