package engine

// Fixed ledger deltas and action labels for the award coordinator and the
// completion state machine. Creation and deletion of a record always use the
// same magnitude with opposite signs so a create+delete pair nets to zero.
const (
	AchievementXP = 50
	SkillXP       = 30

	ActionCompletedTask      = "Completed task"
	ActionAddedAchievement   = "Added an achievement"
	ActionDeletedAchievement = "Deleted an achievement"
	ActionAddedSkill         = "Added a skill"
	ActionDeletedSkill       = "Deleted a skill"
)

// XPPerLevel is the linear level step: every 100 XP is one numeric level.
const XPPerLevel = 100

// Tier is the display name for a band of total XP, distinct from the numeric
// level used by progress UIs.
type Tier string

const (
	TierNewbie   Tier = "Newbie"
	TierLearner  Tier = "Learner"
	TierAchiever Tier = "Achiever"
	TierMaster   Tier = "Master"
)

// Tier breakpoints on total XP.
const (
	tierLearnerMin  = 100
	tierAchieverMin = 300
	tierMasterMin   = 700
)

// LevelDescriptor carries every level-related value derived from one total,
// so the numeric level and the named tier can never disagree about which XP
// they were computed from.
type LevelDescriptor struct {
	TotalXP         int
	Level           int
	XPForNextLevel  int
	ProgressPercent int
	Tier            Tier
}

// Describe computes the level descriptor for a total. Pure and total:
// negative totals (possible after award deletions) floor at level 1 and
// TierNewbie rather than going negative.
func Describe(totalXP int) LevelDescriptor {
	level := totalXP/XPPerLevel + 1
	progress := totalXP % XPPerLevel
	if totalXP < 0 {
		level = 1
		progress = 0
	}
	return LevelDescriptor{
		TotalXP:         totalXP,
		Level:           level,
		XPForNextLevel:  level*XPPerLevel - totalXP,
		ProgressPercent: progress,
		Tier:            TierForTotalXP(totalXP),
	}
}

// TierForTotalXP maps a total to its named tier. Monotonic non-decreasing;
// anything below the Learner breakpoint (including negatives) is Newbie.
func TierForTotalXP(totalXP int) Tier {
	switch {
	case totalXP >= tierMasterMin:
		return TierMaster
	case totalXP >= tierAchieverMin:
		return TierAchiever
	case totalXP >= tierLearnerMin:
		return TierLearner
	default:
		return TierNewbie
	}
}
