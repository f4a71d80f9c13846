package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	startAt, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	endAt, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	recurrence, err := buildRecurrenceRule(req.Recurrence)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		SubjectID:  req.SubjectID,
		Title:      title,
		StartAt:    startAt,
		EndAt:      endAt,
		Completed:  completed,
		Priority:   priority,
		Notes:      req.Notes,
		Recurrence: recurrence,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "subject_id") && req.SubjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var startAt *time.Time
	if hasJSONField(raw, "start") {
		if req.Start == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.Start)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		startAt = &parsed
	}

	var endAt *time.Time
	if hasJSONField(raw, "end") {
		if req.End == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.End)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		endAt = &parsed
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var priority *domain.Priority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		priority = &value
	}

	notesSet := hasJSONField(raw, "notes")
	if notesSet && !isJSONNull(raw["notes"]) && req.Notes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var recurrence *domain.RecurrenceRule
	recurrenceSet := hasJSONField(raw, "recurrence")
	if recurrenceSet && !isJSONNull(raw["recurrence"]) {
		if req.Recurrence == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		built, err := buildRecurrenceRule(req.Recurrence)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		recurrence = built
	}

	return domain.UpdateTaskInput{
		SubjectID:     req.SubjectID,
		Title:         title,
		StartAt:       startAt,
		EndAt:         endAt,
		Completed:     req.Completed,
		Priority:      priority,
		Notes:         req.Notes,
		NotesSet:      notesSet,
		Recurrence:    recurrence,
		RecurrenceSet: recurrenceSet,
	}, nil
}

func buildRecurrenceRule(rule *dto.RecurrenceRule) (*domain.RecurrenceRule, error) {
	if rule == nil {
		return nil, nil
	}

	out := domain.RecurrenceRule{Type: domain.RecurrenceType(rule.Type)}

	if len(rule.DaysOfWeek) > 0 {
		out.DaysOfWeek = append(out.DaysOfWeek, rule.DaysOfWeek...)
	}

	if rule.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *rule.EndDate)
		if err != nil {
			return nil, ErrInvalidTaskPayload
		}
		out.EndDate = &endDate
	}

	return &out, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "subject_id") ||
		hasJSONField(raw, "title") ||
		hasJSONField(raw, "start") ||
		hasJSONField(raw, "end") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "notes") ||
		hasJSONField(raw, "recurrence")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
