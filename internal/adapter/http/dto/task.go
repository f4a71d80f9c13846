package dto

type RecurrenceRule struct {
	Type       string  `json:"type" binding:"required,oneof=none daily weekly"`
	DaysOfWeek []int   `json:"days_of_week,omitempty"`
	EndDate    *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type TaskItem struct {
	ID         string          `json:"id"`
	SubjectID  string          `json:"subject_id"`
	Title      string          `json:"title"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Completed  bool            `json:"completed"`
	Priority   string          `json:"priority"`
	Notes      *string         `json:"notes,omitempty"`
	Recurrence *RecurrenceRule `json:"recurrence,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type CreateTaskRequest struct {
	SubjectID  string          `json:"subject_id" binding:"required"`
	Title      string          `json:"title" binding:"required,max=255"`
	Start      string          `json:"start" binding:"required"`
	End        string          `json:"end" binding:"required"`
	Completed  *bool           `json:"completed"`
	Priority   *string         `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Notes      *string         `json:"notes" binding:"omitempty,max=65535"`
	Recurrence *RecurrenceRule `json:"recurrence"`
}

type UpdateTaskRequest struct {
	SubjectID  *string         `json:"subject_id"`
	Title      *string         `json:"title" binding:"omitempty,max=255"`
	Start      *string         `json:"start"`
	End        *string         `json:"end"`
	Completed  *bool           `json:"completed"`
	Priority   *string         `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Notes      *string         `json:"notes" binding:"omitempty,max=65535"`
	Recurrence *RecurrenceRule `json:"recurrence"`
}
