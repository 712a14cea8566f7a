package availability

import "time"

// NextDates returns the earliest n calendar dates, today inclusive, whose
// weekday is in allowed, in ascending order as 2006-01-02 strings. The
// caller injects "today"; there is no hidden clock state.
func NextDates(today time.Time, allowed []time.Weekday, n int) []string {
	if n <= 0 || len(allowed) == 0 {
		return nil
	}

	allowedSet := make(map[time.Weekday]bool, len(allowed))
	for _, d := range allowed {
		allowedSet[d] = true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dates := make([]string, 0, n)
	for len(dates) < n {
		if allowedSet[day.Weekday()] {
			dates = append(dates, day.Format("2006-01-02"))
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}
