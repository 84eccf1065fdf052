package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// The award coordinator keeps achievement and skill XP in lockstep with the
// record lifecycle: every create pairs with a positive ledger event, every
// delete with its exact negation, and updates stay XP-neutral. Each pair runs
// in one transaction so neither an orphaned record nor an orphaned event can
// survive a failure.

type AchievementInput struct {
	Title       string
	Description *string
	ImageURL    *string
	Category    string
}

type SkillInput struct {
	Name  string
	Level string
}

func (s *Service) CreateAchievement(ctx context.Context, userID string, in AchievementInput) (*storage.Achievement, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ValidationError{Field: "title"}
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, ValidationError{Field: "category"}
	}

	var created *storage.Achievement
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		a, err := s.achievements.WithTx(tx).Insert(ctx, storage.Achievement{
			UserID:      userID,
			Title:       title,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			Category:    category,
			CreatedAt:   s.now(),
		})
		if err != nil {
			return err
		}
		if _, err := s.events.WithTx(tx).Insert(ctx, userID, ActionAddedAchievement, AchievementXP, s.now()); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateAchievement(ctx context.Context, userID, id string, in AchievementInput) (*storage.Achievement, error) {
	// Updates mutate descriptive fields only and never touch the ledger.
	existing, err := s.achievements.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("achievement %s: %w", id, ErrNotFound)
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.ImageURL = in.ImageURL
	existing.Category = in.Category
	if err := s.achievements.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteAchievement(ctx context.Context, userID, id string) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		achievements := s.achievements.WithTx(tx)
		existing, err := achievements.Get(ctx, id, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("achievement %s: %w", id, ErrNotFound)
		}
		if err := achievements.Delete(ctx, id, userID); err != nil {
			return err
		}
		_, err = s.events.WithTx(tx).Insert(ctx, userID, ActionDeletedAchievement, -AchievementXP, s.now())
		return err
	})
}

func (s *Service) CreateSkill(ctx context.Context, userID string, in SkillInput) (*storage.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ValidationError{Field: "skill name"}
	}
	level := strings.TrimSpace(in.Level)
	if level == "" {
		return nil, ValidationError{Field: "skill level"}
	}

	var created *storage.Skill
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		sk, err := s.skills.WithTx(tx).Insert(ctx, storage.Skill{
			UserID:     userID,
			SkillName:  name,
			SkillLevel: level,
			CreatedAt:  s.now(),
		})
		if err != nil {
			return err
		}
		if _, err := s.events.WithTx(tx).Insert(ctx, userID, ActionAddedSkill, SkillXP, s.now()); err != nil {
			return err
		}
		created = sk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateSkill(ctx context.Context, userID, id string, in SkillInput) (*storage.Skill, error) {
	existing, err := s.skills.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}

	existing.SkillName = in.Name
	existing.SkillLevel = in.Level
	if err := s.skills.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteSkill(ctx context.Context, userID, id string) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		skills := s.skills.WithTx(tx)
		existing, err := skills.Get(ctx, id, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("skill %s: %w", id, ErrNotFound)
		}
		if err := skills.Delete(ctx, id, userID); err != nil {
			return err
		}
		_, err = s.events.WithTx(tx).Insert(ctx, userID, ActionDeletedSkill, -SkillXP, s.now())
		return err
	})
}
