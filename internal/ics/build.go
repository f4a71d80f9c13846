// Package ics renders task templates as an iCalendar feed so external
// calendar clients can subscribe to the study schedule.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

const prodID = "-//ScholarSync//Planner//EN"

// Build serializes tasks into a VCALENDAR. Recurring templates get an
// RRULE line; calendar clients expand them on their side. A task whose
// rule cannot be translated is exported without the rule rather than
// failing the feed.
func Build(tasks []domain.Task) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, task := range tasks {
		event := cal.AddEvent(fmt.Sprintf("%s@scholarsync", task.ID))
		event.SetSummary(task.Title)
		event.SetStartAt(task.StartAt)
		event.SetEndAt(task.EndAt)
		event.SetDtStampTime(time.Now())
		if task.Notes != nil {
			event.SetDescription(*task.Notes)
		}

		if !task.Recurs() {
			continue
		}

		line, err := rruleLine(task)
		if err != nil {
			zap.L().Warn("skipping untranslatable recurrence rule",
				zap.String("task_id", task.ID), zap.Error(err))
			continue
		}
		if line != "" {
			event.AddRrule(line)
		}
	}

	return cal.Serialize(), nil
}

// iCalendar weekday constants indexed by 0=Sunday..6=Saturday.
var rruleWeekdays = []rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

func rruleLine(task domain.Task) (string, error) {
	rule := task.Recurrence

	opt := rrule.ROption{}
	switch rule.Type {
	case domain.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case domain.RecurrenceWeekly:
		opt.Freq = rrule.WEEKLY
		for _, d := range rule.DaysOfWeek {
			if d < 0 || d > 6 {
				continue
			}
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
		}
		if len(opt.Byweekday) == 0 {
			// Nothing to repeat on; export as a one-off.
			return "", nil
		}
	default:
		return "", fmt.Errorf("unsupported recurrence type %q", rule.Type)
	}

	if rule.EndDate != nil {
		end := *rule.EndDate
		// Inclusive day bound: repeat until the end of that day.
		opt.Until = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
	}

	if _, err := rrule.NewRRule(opt); err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}
