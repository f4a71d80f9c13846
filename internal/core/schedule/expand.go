package schedule

import (
	"sort"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

// Occurrence is one concrete calendar instance of a (possibly
// recurring) task. It exists only for the duration of a render or query
// pass and is never persisted. StartAt/EndAt override the template's
// instants for this hit.
type Occurrence struct {
	Task    domain.Task
	StartAt time.Time
	EndAt   time.Time
}

// Expand produces the concrete occurrences of task that fall inside the
// [weekStart, weekEnd] window. Output order is unspecified; callers
// sort as needed.
//
// Non-recurring tasks yield themselves iff their interval overlaps the
// window under the half-open test (start < weekEnd && end > weekStart).
// Recurring tasks are matched day by day: a day is skipped while the
// template has not begun, skipped once past the inclusive end date, and
// otherwise matches when the rule is daily or the day's weekday is
// listed in the weekly rule. Each hit keeps the template's time of day
// and duration.
func Expand(task domain.Task, weekStart, weekEnd time.Time) []Occurrence {
	if !task.Recurs() {
		if task.StartAt.Before(weekEnd) && task.EndAt.After(weekStart) {
			return []Occurrence{{Task: task, StartAt: task.StartAt, EndAt: task.EndAt}}
		}
		return nil
	}

	rule := task.Recurrence
	duration := task.Duration()

	var out []Occurrence
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)

		// Template has not begun as of this day.
		if task.StartAt.After(endOfDay(day)) {
			continue
		}
		// Past the inclusive recurrence end date.
		if rule.EndDate != nil && day.After(*rule.EndDate) {
			continue
		}

		match := rule.Type == domain.RecurrenceDaily ||
			(rule.Type == domain.RecurrenceWeekly && weekdayListed(rule.DaysOfWeek, day.Weekday()))
		if !match {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(),
			task.StartAt.Hour(), task.StartAt.Minute(), task.StartAt.Second(), 0, day.Location())
		out = append(out, Occurrence{Task: task, StartAt: start, EndAt: start.Add(duration)})
	}
	return out
}

// ExpandAll expands every task over the window and returns the combined
// occurrence list sorted by start instant.
func ExpandAll(tasks []domain.Task, weekStart, weekEnd time.Time) []Occurrence {
	occurrences := make([]Occurrence, 0, len(tasks))
	for _, task := range tasks {
		occurrences = append(occurrences, Expand(task, weekStart, weekEnd)...)
	}
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].StartAt.Before(occurrences[j].StartAt)
	})
	return occurrences
}

// weekdayListed reports whether wd appears in days. Values outside 0..6
// are ignored so malformed stored rules never break expansion.
func weekdayListed(days []int, wd time.Weekday) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		if time.Weekday(d) == wd {
			return true
		}
	}
	return false
}
