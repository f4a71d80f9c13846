package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx, scope)
}

func (s *TaskService) CreateTask(ctx context.Context, scope domain.Scope, input domain.CreateTaskInput) (domain.Task, error) {
	if !input.EndAt.After(input.StartAt) {
		return domain.Task{}, domain.ErrInvalidInterval
	}

	now := time.Now()
	task := domain.Task{
		ID:         uuid.NewString(),
		Scope:      scope,
		SubjectID:  input.SubjectID,
		Title:      input.Title,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		Completed:  input.Completed,
		Priority:   input.Priority,
		Notes:      input.Notes,
		Recurrence: sanitizeRule(input.Recurrence),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, scope domain.Scope, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, scope, id)
	if err != nil {
		return domain.Task{}, err
	}

	if input.SubjectID != nil {
		task.SubjectID = *input.SubjectID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.StartAt != nil {
		task.StartAt = *input.StartAt
	}
	if input.EndAt != nil {
		task.EndAt = *input.EndAt
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.NotesSet {
		task.Notes = input.Notes
	}
	if input.RecurrenceSet {
		task.Recurrence = sanitizeRule(input.Recurrence)
	}

	if !task.EndAt.After(task.StartAt) {
		return domain.Task{}, domain.ErrInvalidInterval
	}

	task.UpdatedAt = time.Now()
	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, scope domain.Scope, id string) error {
	return s.taskRepository.DeleteTask(ctx, scope, id)
}

// sanitizeRule drops weekday values outside 0..6 and collapses an
// explicit none rule to nil.
func sanitizeRule(rule *domain.RecurrenceRule) *domain.RecurrenceRule {
	if rule == nil || rule.Type == domain.RecurrenceNone {
		return nil
	}

	clean := &domain.RecurrenceRule{Type: rule.Type, EndDate: rule.EndDate}
	for _, d := range rule.DaysOfWeek {
		if d >= 0 && d <= 6 {
			clean.DaysOfWeek = append(clean.DaysOfWeek, d)
		}
	}
	return clean
}
