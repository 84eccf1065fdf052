package engine

import (
	"context"
	"fmt"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// Profile is the combined view a profile page renders: the user record, the
// derived XP state and the owned collections.
type Profile struct {
	User         storage.User
	XP           LevelDescriptor
	Skills       []storage.Skill
	Achievements []storage.Achievement
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	total, err := s.events.TotalXP(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	achievements, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:         *u,
		XP:           Describe(total),
		Skills:       skills,
		Achievements: achievements,
	}, nil
}
