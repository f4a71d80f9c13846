package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func ToSessionItem(session domain.StudySession) dto.SessionItem {
	item := dto.SessionItem{
		ID:              session.ID,
		SubjectID:       session.SubjectID,
		Start:           session.StartAt.Format(time.RFC3339),
		End:             session.EndAt.Format(time.RFC3339),
		DurationMinutes: session.DurationMinutes,
		CreatedAt:       session.CreatedAt.Format(time.RFC3339),
	}

	if session.TaskID != nil {
		taskID := *session.TaskID
		item.TaskID = &taskID
	}

	return item
}

func ToSessionItems(sessions []domain.StudySession) []dto.SessionItem {
	items := make([]dto.SessionItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, ToSessionItem(session))
	}
	return items
}
