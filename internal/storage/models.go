package storage

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type TaskTemplate struct {
	ID          int64
	Title       string
	Description *string
	XPReward    int
	Frequency   string
}

type TaskAssignment struct {
	ID     int64
	UserID string
	TaskID int64
	// Frequency is denormalized from the template at seed time so the
	// per-window unique index can include it.
	Frequency string
	PeriodKey string
	// AssignedOn is the calendar day key, formatted 2006-01-02.
	AssignedOn  string
	IsCompleted bool
	CompletedAt *time.Time
}

// XPEvent is one immutable ledger row. xp_delta is signed: completions and
// award creations append positive deltas, award deletions append the exact
// negation.
type XPEvent struct {
	ID        string
	UserID    string
	Action    string
	XPDelta   int
	CreatedAt time.Time
}

type Achievement struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	ImageURL    *string
	Category    string
	CreatedAt   time.Time
}

type Skill struct {
	ID        string
	UserID    string
	SkillName string
	// SkillLevel is descriptive (e.g. "beginner"), not derived from XP.
	SkillLevel string
	CreatedAt  time.Time
}
