package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildCreateTaskInput_Defaults(t *testing.T) {
	body := `{"subject_id": "subj-math", "title": "  Calculus review  ", "start": "2026-03-02T09:00:00Z", "end": "2026-03-02T10:30:00Z"}`

	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	input, err := BuildCreateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.Equal(t, "Calculus review", input.Title)
	require.Equal(t, domain.PriorityMedium, input.Priority)
	require.False(t, input.Completed)
	require.Nil(t, input.Recurrence)
	require.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), input.StartAt)
}

func TestBuildCreateTaskInput_RecurrenceEndDate(t *testing.T) {
	body := `{
		"subject_id": "subj-math",
		"title": "Calculus review",
		"start": "2026-03-02T09:00:00Z",
		"end": "2026-03-02T10:30:00Z",
		"recurrence": {"type": "weekly", "days_of_week": [1, 3, 5], "end_date": "2026-04-30"}
	}`

	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	input, err := BuildCreateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.NotNil(t, input.Recurrence)
	require.Equal(t, domain.RecurrenceWeekly, input.Recurrence.Type)
	require.Equal(t, []int{1, 3, 5}, input.Recurrence.DaysOfWeek)
	require.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), *input.Recurrence.EndDate)
}

func TestBuildCreateTaskInput_BlankTitle(t *testing.T) {
	body := `{"subject_id": "subj-math", "title": "   ", "start": "2026-03-02T09:00:00Z", "end": "2026-03-02T10:30:00Z"}`

	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	_, err := BuildCreateTaskInput(req, rawFields(t, body))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_BadTimestamp(t *testing.T) {
	body := `{"subject_id": "subj-math", "title": "Calculus review", "start": "tomorrow", "end": "2026-03-02T10:30:00Z"}`

	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	_, err := BuildCreateTaskInput(req, rawFields(t, body))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_RequiresAtLeastOneField(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_NullNotesClearsThem(t *testing.T) {
	body := `{"notes": null}`

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	input, err := BuildUpdateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.True(t, input.NotesSet)
	require.Nil(t, input.Notes)
	require.False(t, input.RecurrenceSet)
}

func TestBuildUpdateTaskInput_NullRecurrenceClearsIt(t *testing.T) {
	body := `{"recurrence": null}`

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	input, err := BuildUpdateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.True(t, input.RecurrenceSet)
	require.Nil(t, input.Recurrence)
}

func TestBuildUpdateTaskInput_TypedNullField(t *testing.T) {
	body := `{"title": null}`

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	_, err := BuildUpdateTaskInput(req, rawFields(t, body))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_PartialUpdate(t *testing.T) {
	body := `{"completed": true, "priority": "Low"}`

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	input, err := BuildUpdateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.True(t, *input.Completed)
	require.Equal(t, domain.PriorityLow, *input.Priority)
	require.Nil(t, input.Title)
	require.False(t, input.NotesSet)
}
