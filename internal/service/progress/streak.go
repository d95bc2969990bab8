package progress

import (
	"slices"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// ComputeStreak derives streak metrics from active days. Dates must be
// normalized with domain.Day; duplicates are ignored. today is the current
// calendar day in the same normalization.
//
// The current streak only counts when the latest active day is today or
// yesterday. The longest streak is never below the current one and is at
// least 1 once there is any activity.
func ComputeStreak(dates []time.Time, today time.Time) domain.Streak {
	days := uniqueDesc(dates)
	if len(days) == 0 {
		return domain.Streak{}
	}

	current := 0
	if domain.DaysBetween(days[0], today) <= 1 {
		current = 1
		for i := 1; i < len(days); i++ {
			if domain.DaysBetween(days[i], days[i-1]) != 1 {
				break
			}
			current++
		}
	}

	longest, run := 0, 1
	for i := 1; i < len(days); i++ {
		if domain.DaysBetween(days[i], days[i-1]) == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}

	last := days[0]
	return domain.Streak{
		Current:    current,
		Longest:    max(longest, current, 1),
		LastActive: &last,
	}
}

func uniqueDesc(dates []time.Time) []time.Time {
	days := slices.Clone(dates)
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	return slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })
}
