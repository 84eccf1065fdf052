package engine

import (
	"database/sql"
	"math/rand"
	"sync"
	"time"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

type Service struct {
	db           *sql.DB
	users        *storage.UserRepo
	templates    *storage.TaskTemplateRepo
	assignments  *storage.TaskAssignmentRepo
	events       *storage.XPEventRepo
	achievements *storage.AchievementRepo
	skills       *storage.SkillRepo

	now   func() time.Time
	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Service)

// WithClock replaces the wall clock; tests pin "today" with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand replaces the template selection source so rotation picks become
// deterministic under test.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:           db,
		users:        storage.NewUserRepo(db),
		templates:    storage.NewTaskTemplateRepo(db),
		assignments:  storage.NewTaskAssignmentRepo(db),
		events:       storage.NewXPEventRepo(db),
		achievements: storage.NewAchievementRepo(db),
		skills:       storage.NewSkillRepo(db),
		now:          func() time.Time { return time.Now().UTC() },
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pickIndex draws a uniform index below n. The shared rand source is not safe
// for concurrent use, so draws are serialized.
func (s *Service) pickIndex(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) UserRepo() *storage.UserRepo                   { return s.users }
func (s *Service) TemplateRepo() *storage.TaskTemplateRepo       { return s.templates }
func (s *Service) AssignmentRepo() *storage.TaskAssignmentRepo   { return s.assignments }
func (s *Service) XPEventRepo() *storage.XPEventRepo             { return s.events }
func (s *Service) AchievementRepo() *storage.AchievementRepo     { return s.achievements }
func (s *Service) SkillRepo() *storage.SkillRepo                 { return s.skills }
