package service

import (
	"context"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/ics"
)

type PlannerService struct {
	taskRepository    ports.TaskRepository
	subjectRepository ports.SubjectRepository
	visibleStartHour  int
	visibleEndHour    int
}

var _ ports.PlannerService = (*PlannerService)(nil)

func NewPlannerService(taskRepository ports.TaskRepository, subjectRepository ports.SubjectRepository, visibleStartHour, visibleEndHour int) *PlannerService {
	if visibleStartHour <= 0 && visibleEndHour <= 0 {
		visibleStartHour = schedule.DefaultVisibleStartHour
		visibleEndHour = schedule.DefaultVisibleEndHour
	}
	return &PlannerService{
		taskRepository:    taskRepository,
		subjectRepository: subjectRepository,
		visibleStartHour:  visibleStartHour,
		visibleEndHour:    visibleEndHour,
	}
}

// WeekView expands the scope's tasks over the window containing ref and
// attaches grid geometry to each occurrence. It always works on the
// full snapshot the repositories hand back; a fresh snapshot mid-render
// simply produces a fresh view.
func (s *PlannerService) WeekView(ctx context.Context, scope domain.Scope, ref time.Time) (schedule.WeekView, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, scope)
	if err != nil {
		return schedule.WeekView{}, err
	}

	subjects, err := s.subjectRepository.ListSubjects(ctx, scope)
	if err != nil {
		return schedule.WeekView{}, err
	}

	palette := make(schedule.Palette, len(subjects))
	for _, subject := range subjects {
		palette[subject.ID] = subject.Color
	}

	weekStart, weekEnd := schedule.WeekWindow(ref)
	occurrences := schedule.ExpandAll(tasks, weekStart, weekEnd)

	view := schedule.WeekView{
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		VisibleStartHour: s.visibleStartHour,
		VisibleEndHour:   s.visibleEndHour,
		Occurrences:      make([]schedule.PositionedOccurrence, 0, len(occurrences)),
	}
	for _, occ := range occurrences {
		view.Occurrences = append(view.Occurrences, schedule.PositionedOccurrence{
			Occurrence: occ,
			Block:      schedule.Layout(occ, s.visibleStartHour, palette),
		})
	}
	return view, nil
}

// ExportICS renders the scope's task templates as an iCalendar feed;
// recurring templates carry RRULE lines instead of being expanded.
func (s *PlannerService) ExportICS(ctx context.Context, scope domain.Scope) (string, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, scope)
	if err != nil {
		return "", err
	}
	return ics.Build(tasks)
}
