package engine

import (
	"context"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// XPSummary is the full derived view over a user's ledger: the descriptor
// and the event log, newest first, both computed from the same read.
type XPSummary struct {
	LevelDescriptor
	Events []storage.XPEvent
}

// AppendXP writes one immutable ledger event. It either persists the single
// event or reports a write failure; it never retries.
func (s *Service) AppendXP(ctx context.Context, userID, action string, xpDelta int) (*storage.XPEvent, error) {
	return s.events.Insert(ctx, userID, action, xpDelta, s.now())
}

// TotalXP derives the user's total from the ledger, the sole source of truth.
func (s *Service) TotalXP(ctx context.Context, userID string) (int, error) {
	return s.events.TotalXP(ctx, userID)
}

// Level derives the numeric level and named tier from the current total.
func (s *Service) Level(ctx context.Context, userID string) (LevelDescriptor, error) {
	total, err := s.events.TotalXP(ctx, userID)
	if err != nil {
		return LevelDescriptor{}, err
	}
	return Describe(total), nil
}

func (s *Service) GetXPSummary(ctx context.Context, userID string) (*XPSummary, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, ev := range events {
		total += ev.XPDelta
	}
	return &XPSummary{
		LevelDescriptor: Describe(total),
		Events:          events,
	}, nil
}
