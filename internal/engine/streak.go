package engine

import "time"

const dayFormat = "2006-01-02"

// applyStreak evaluates the once-per-day streak rule for a patch call in
// which at least one task was completed. last is the stored
// lastCompletedDate; a value that fails to parse counts as not consecutive.
func applyStreak(prior int, last *string, now time.Time) (count int, lastDate string) {
	today := now.Format(dayFormat)
	if last == nil {
		return 1, today
	}
	if *last == today {
		// Already counted a completion today.
		return prior, today
	}
	prev, err := time.Parse(dayFormat, *last)
	if err != nil {
		return 1, today
	}
	if prev.AddDate(0, 0, 1).Format(dayFormat) == today {
		return prior + 1, today
	}
	return 1, today
}
