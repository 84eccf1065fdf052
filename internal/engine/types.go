package engine

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is a task template's rotation period.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Frequencies lists the supported rotation periods in the order assignments
// are seeded and listed (alphabetic, matching the storage sort).
var Frequencies = []Frequency{FrequencyDaily, FrequencyMonthly, FrequencyYearly}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// periodKey identifies the frequency's current calendar window: one key per
// day, month or year. Two assignments of the same frequency share a key only
// when they fall in the same window.
func periodKey(f Frequency, now time.Time) string {
	switch f {
	case FrequencyMonthly:
		return now.Format("2006-01")
	case FrequencyYearly:
		return now.Format("2006")
	default:
		return now.Format("2006-01-02")
	}
}

// dayKey is the calendar-day key used for assigned_on.
func dayKey(now time.Time) string {
	return now.Format("2006-01-02")
}
