package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

func ToWeekViewResponse(view schedule.WeekView) dto.WeekViewResponse {
	occurrences := make([]dto.OccurrenceItem, 0, len(view.Occurrences))
	for _, occ := range view.Occurrences {
		occurrences = append(occurrences, dto.OccurrenceItem{
			TaskID:           occ.Task.ID,
			SubjectID:        occ.Task.SubjectID,
			Title:            occ.Task.Title,
			Start:            occ.StartAt.Format(time.RFC3339),
			End:              occ.EndAt.Format(time.RFC3339),
			Completed:        occ.Task.Completed,
			Priority:         string(occ.Task.Priority),
			Recurring:        occ.Task.Recurs(),
			TopOffsetMinutes: occ.TopOffsetMinutes,
			HeightMinutes:    occ.HeightMinutes,
			Color:            occ.Color,
		})
	}

	return dto.WeekViewResponse{
		WeekStart:        view.WeekStart.Format(time.RFC3339),
		WeekEnd:          view.WeekEnd.Format(time.RFC3339),
		VisibleStartHour: view.VisibleStartHour,
		VisibleEndHour:   view.VisibleEndHour,
		Occurrences:      occurrences,
	}
}
