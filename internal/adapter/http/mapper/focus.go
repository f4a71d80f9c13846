package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func ToFocusStatusResponse(status domain.FocusStatus) dto.FocusStatusResponse {
	resp := dto.FocusStatusResponse{
		State:            string(status.State),
		Mode:             string(status.Mode),
		SubjectID:        status.SubjectID,
		RemainingSeconds: status.RemainingSeconds,
	}

	if status.TaskID != nil {
		taskID := *status.TaskID
		resp.TaskID = &taskID
	}

	if status.StartedAt != nil {
		startedAt := status.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &startedAt
	}

	return resp
}
