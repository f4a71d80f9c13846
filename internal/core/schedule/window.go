package schedule

import "time"

// WeekWindow computes the Sunday-aligned 7-day window containing ref.
// The start is the Sunday at or before ref truncated to midnight; the
// end is six days later at 23:59:59.999 in the same location.
func WeekWindow(ref time.Time) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// endOfDay returns 23:59:59.999 on the calendar day of t.
func endOfDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.Add(24*time.Hour - time.Millisecond)
}
