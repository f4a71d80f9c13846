package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

// DigestService builds a human-readable daily summary: today's
// occurrences plus goal progress. The cron job logs it; clients can
// also fetch it over the API.
type DigestService struct {
	taskRepository ports.TaskRepository
	goalRepository ports.GoalRepository
}

func NewDigestService(taskRepository ports.TaskRepository, goalRepository ports.GoalRepository) *DigestService {
	return &DigestService{taskRepository: taskRepository, goalRepository: goalRepository}
}

func (s *DigestService) DailyDigest(ctx context.Context, scope domain.Scope, now time.Time) (string, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, scope)
	if err != nil {
		return "", err
	}

	goals, err := s.goalRepository.ListGoals(ctx, scope)
	if err != nil {
		return "", err
	}

	weekStart, weekEnd := schedule.WeekWindow(now)
	var today []schedule.Occurrence
	for _, occ := range schedule.ExpandAll(tasks, weekStart, weekEnd) {
		if sameDay(occ.StartAt, now) {
			today = append(today, occ)
		}
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Study plan for %s\n", now.Format("Mon, 02 Jan 2006")))

	if len(today) == 0 {
		builder.WriteString("No scheduled study blocks today.\n")
	}
	for _, occ := range today {
		marker := " "
		if occ.Task.Completed {
			marker = "x"
		}
		builder.WriteString(fmt.Sprintf("[%s] %s-%s %s (%s)\n",
			marker,
			occ.StartAt.Format("15:04"),
			occ.EndAt.Format("15:04"),
			occ.Task.Title,
			occ.Task.Priority,
		))
	}

	if len(goals) > 0 {
		builder.WriteString("Goals:\n")
		for _, goal := range goals {
			builder.WriteString(fmt.Sprintf("- %s: %d/%d min (%d%%)\n",
				goal.Title,
				goal.CurrentMinutes,
				goal.TargetMinutes,
				schedule.ProgressPercent(goal),
			))
		}
	}

	return builder.String(), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
