package internal

import "time"

// Streak returns the number of consecutive calendar days with at least
// one session, counting backwards from now. A streak survives if the
// most recent session day is today or yesterday; otherwise it is 0.
func Streak(sessions []SessionRecord, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[dayKey(s.Timestamp)] = true
	}

	start := now
	if !days[dayKey(now)] {
		yesterday := now.AddDate(0, 0, -1)
		if !days[dayKey(yesterday)] {
			return 0
		}
		start = yesterday
	}

	streak := 0
	for d := start; days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}

	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
