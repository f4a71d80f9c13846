package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

func TestPlannerService_WeekView_ResolvesPalette(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ListTasks", mock.Anything, domain.ScopeLocal).Return(
		[]domain.Task{
			{
				ID:        "task-1",
				SubjectID: "subj-math",
				Title:     "Calculus review",
				StartAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				EndAt:     time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:        "task-2",
				SubjectID: "subj-gone",
				Title:     "Orphaned block",
				StartAt:   time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC),
				EndAt:     time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
			},
		},
		nil,
	).Once()

	subjectRepo := new(subjectRepositoryMock)
	subjectRepo.On("ListSubjects", mock.Anything, domain.ScopeLocal).Return(
		[]domain.Subject{{ID: "subj-math", Name: "Mathematics", Color: "#3b82f6"}},
		nil,
	).Once()

	svc := NewPlannerService(taskRepo, subjectRepo, 7, 22)

	view, err := svc.WeekView(context.Background(), domain.ScopeLocal, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), view.WeekStart)
	require.Equal(t, 7, view.VisibleStartHour)
	require.Equal(t, 22, view.VisibleEndHour)
	require.Len(t, view.Occurrences, 2)

	require.Equal(t, "task-1", view.Occurrences[0].Task.ID)
	require.Equal(t, "#3b82f6", view.Occurrences[0].Color)
	require.InDelta(t, 120, view.Occurrences[0].TopOffsetMinutes, 0.001)
	require.InDelta(t, 90, view.Occurrences[0].HeightMinutes, 0.001)

	// A dangling subject reference falls back to gray.
	require.Equal(t, "task-2", view.Occurrences[1].Task.ID)
	require.Equal(t, schedule.FallbackColor, view.Occurrences[1].Color)

	taskRepo.AssertExpectations(t)
	subjectRepo.AssertExpectations(t)
}

func TestPlannerService_ExportICS(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("ListTasks", mock.Anything, domain.ScopeLocal).Return(
		[]domain.Task{
			{
				ID:         "task-1",
				SubjectID:  "subj-math",
				Title:      "Calculus review",
				StartAt:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				EndAt:      time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
				Recurrence: &domain.RecurrenceRule{Type: domain.RecurrenceDaily},
			},
		},
		nil,
	).Once()

	svc := NewPlannerService(taskRepo, new(subjectRepositoryMock), 7, 22)

	payload, err := svc.ExportICS(context.Background(), domain.ScopeLocal)
	require.NoError(t, err)
	require.Contains(t, payload, "BEGIN:VCALENDAR")
	require.Contains(t, payload, "SUMMARY:Calculus review")
	require.Contains(t, payload, "RRULE:FREQ=DAILY")
}
