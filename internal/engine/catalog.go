package engine

import (
	"context"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// builtinCatalog is the starter task pool. The rotation engine treats the
// catalog as read-only; SeedCatalog upserts these rows so reseeding an
// existing database is safe.
func builtinCatalog() []storage.TaskTemplate {
	return []storage.TaskTemplate{
		{Title: "Read 20 pages", Description: strptr("Read twenty pages of any book"), XPReward: 20, Frequency: string(FrequencyDaily)},
		{Title: "Exercise for 30 minutes", Description: strptr("Any workout counts"), XPReward: 25, Frequency: string(FrequencyDaily)},
		{Title: "Write a journal entry", Description: strptr("Reflect on the day in a few paragraphs"), XPReward: 15, Frequency: string(FrequencyDaily)},
		{Title: "Practice a skill for an hour", Description: strptr("Deliberate practice on any tracked skill"), XPReward: 30, Frequency: string(FrequencyDaily)},
		{Title: "Finish a book", Description: strptr("Complete a book cover to cover"), XPReward: 100, Frequency: string(FrequencyMonthly)},
		{Title: "Learn something new", Description: strptr("Finish a course module or tutorial series"), XPReward: 120, Frequency: string(FrequencyMonthly)},
		{Title: "Declutter one area", Description: strptr("Workspace, wardrobe or inbox"), XPReward: 80, Frequency: string(FrequencyMonthly)},
		{Title: "Complete a major goal", Description: strptr("One of this year's headline goals"), XPReward: 500, Frequency: string(FrequencyYearly)},
		{Title: "Run a long-distance event", Description: strptr("10k or longer, walking counts"), XPReward: 400, Frequency: string(FrequencyYearly)},
	}
}

func strptr(s string) *string { return &s }

// SeedCatalog upserts the built-in template pool and returns how many
// templates it wrote.
func (s *Service) SeedCatalog(ctx context.Context) (int, error) {
	catalog := builtinCatalog()
	for _, t := range catalog {
		if err := s.templates.Upsert(ctx, t); err != nil {
			return 0, err
		}
	}
	return len(catalog), nil
}
