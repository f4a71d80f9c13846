package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

func ToGoalItem(goal domain.Goal) dto.GoalItem {
	return dto.GoalItem{
		ID:              goal.ID,
		Title:           goal.Title,
		TargetMinutes:   goal.TargetMinutes,
		CurrentMinutes:  goal.CurrentMinutes,
		Period:          string(goal.Period),
		ProgressPercent: schedule.ProgressPercent(goal),
		CreatedAt:       goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       goal.UpdatedAt.Format(time.RFC3339),
	}
}

func ToGoalItems(goals []domain.Goal) []dto.GoalItem {
	items := make([]dto.GoalItem, 0, len(goals))
	for _, goal := range goals {
		items = append(items, ToGoalItem(goal))
	}
	return items
}
