package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		SubjectID: task.SubjectID,
		Title:     task.Title,
		Start:     task.StartAt.Format(time.RFC3339),
		End:       task.EndAt.Format(time.RFC3339),
		Completed: task.Completed,
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Notes != nil {
		notes := *task.Notes
		item.Notes = &notes
	}

	if task.Recurrence != nil {
		item.Recurrence = toRecurrenceRule(*task.Recurrence)
	}

	return item
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func toRecurrenceRule(rule domain.RecurrenceRule) *dto.RecurrenceRule {
	out := dto.RecurrenceRule{Type: string(rule.Type)}

	if len(rule.DaysOfWeek) > 0 {
		out.DaysOfWeek = append(out.DaysOfWeek, rule.DaysOfWeek...)
	}

	if rule.EndDate != nil {
		endDate := rule.EndDate.Format(time.DateOnly)
		out.EndDate = &endDate
	}

	return &out
}
