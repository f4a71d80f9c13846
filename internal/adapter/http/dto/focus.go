package dto

type StartFocusRequest struct {
	Mode      string  `json:"mode" binding:"omitempty,oneof=study break"`
	SubjectID string  `json:"subject_id" binding:"required"`
	TaskID    *string `json:"task_id"`
}

type FocusStatusResponse struct {
	State            string  `json:"state"`
	Mode             string  `json:"mode"`
	SubjectID        string  `json:"subject_id,omitempty"`
	TaskID           *string `json:"task_id,omitempty"`
	RemainingSeconds int     `json:"remaining_seconds"`
	StartedAt        *string `json:"started_at,omitempty"`
}
