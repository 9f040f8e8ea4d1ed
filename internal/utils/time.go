package utils

import (
	"fmt"
	"time"
)

// FormatLocal renders a stored UTC timestamp in the machine's local
// time, the way the original app showed workout times.
func FormatLocal(t time.Time) string {
	local := t.Local()
	return fmt.Sprintf("%d/%02d/%02d - %02d:%02d",
		local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute())
}

// WeekStreak counts how many consecutive ISO weeks, ending with the
// week of now, contain at least one of the given timestamps.
func WeekStreak(times []time.Time, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, t := range times {
		year, week := t.Local().ISOWeek()
		weekSet[weekKey(year, week)] = true
	}

	streak := 0
	for {
		year, week := now.ISOWeek()
		if !weekSet[weekKey(year, week)] {
			break
		}
		streak++
		now = now.AddDate(0, 0, -7)
	}
	return streak
}

func weekKey(year, week int) string {
	return fmt.Sprintf("%d-%02d", year, week)
}
