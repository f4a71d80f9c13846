package dto

type SessionItem struct {
	ID              string  `json:"id"`
	SubjectID       string  `json:"subject_id"`
	TaskID          *string `json:"task_id,omitempty"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"duration_minutes"`
	CreatedAt       string  `json:"created_at"`
}

type CreateSessionRequest struct {
	SubjectID       string  `json:"subject_id" binding:"required"`
	TaskID          *string `json:"task_id"`
	Start           string  `json:"start" binding:"required"`
	End             string  `json:"end" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}
