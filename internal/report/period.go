package report

import "time"

// MonthBounds returns the first and last instant of the calendar month
// containing now, in now's location.
func MonthBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
