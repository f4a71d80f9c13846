package dto

type GoalItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	TargetMinutes   int    `json:"target_minutes"`
	CurrentMinutes  int    `json:"current_minutes"`
	Period          string `json:"period"`
	ProgressPercent int    `json:"progress_percent"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type CreateGoalRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	TargetMinutes int    `json:"target_minutes" binding:"required,gt=0"`
	Period        string `json:"period" binding:"required,oneof=daily weekly"`
}

type UpdateGoalRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=255"`
	TargetMinutes  *int    `json:"target_minutes" binding:"omitempty,gt=0"`
	CurrentMinutes *int    `json:"current_minutes" binding:"omitempty,gte=0"`
	Period         *string `json:"period" binding:"omitempty,oneof=daily weekly"`
}
